package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepositoryHasNoBoundaryViolations(t *testing.T) {
	t.Chdir("..")
	if _, err := os.Stat("go.mod"); err != nil {
		t.Fatalf("expected repository root, got %v", err)
	}

	for _, v := range collectViolations("contexts") {
		t.Errorf("%s:%d imports %q (%s)", v.File, v.Line, v.Import, v.Rule)
	}
}

func TestCollectViolationsFlagsForbiddenImports(t *testing.T) {
	root := t.TempDir()
	write := func(rel string, body string) {
		t.Helper()
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	write("contexts/shipping/parcels/domain/entities/parcel.go", `package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"parcelhub/internal/platform/db"
)
`)
	write("contexts/shipping/parcels/application/service.go", `package application

import (
	"gorm.io/gorm"
	"parcelhub/contexts/billing/ledger/ports"
	"parcelhub/contexts/shipping/parcels/ports"
)
`)
	write("contexts/shipping/parcels/adapters/memory/store.go", `package memory

import "parcelhub/contexts/shipping/parcels/domain/entities"
`)
	write("contexts/shipping/parcels/domain/entities/parcel_test.go", `package entities

import "gorm.io/gorm"
`)
	t.Chdir(root)

	rules := map[string]int{}
	for _, v := range collectViolations("contexts") {
		rules[v.Rule]++
	}

	want := map[string]int{
		"domain must not import runtime infrastructure":    1,
		"domain import is outside explicit allowlist":      1,
		"application import is outside explicit allowlist": 2,
		"cross-module imports are forbidden":               1,
	}
	for rule, count := range want {
		if rules[rule] != count {
			t.Fatalf("expected %d %q violations, got %d (all: %v)", count, rule, rules[rule], rules)
		}
	}
	if len(rules) != len(want) {
		t.Fatalf("unexpected rules reported: %v", rules)
	}
}
