package messaging

import "errors"

var ErrSubscriberBusy = errors.New("subscriber buffer is full")
