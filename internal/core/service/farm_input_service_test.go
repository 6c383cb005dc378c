package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

func TestFarmInputService_Create_NormalisesCategory(t *testing.T) {
	repo := newStubFarmInputRepo()
	svc := NewFarmInputService(repo, testLogger())

	input, err := svc.Create(context.Background(), ports.CreateFarmInput{
		Product: "BRRI dhan29", Category: "  SEED  ", Price: 52.5,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if input.Category != "seed" {
		t.Fatalf("category not normalised: %q", input.Category)
	}
	if input.Unit != "unit" {
		t.Fatalf("expected default unit, got %q", input.Unit)
	}
}

func TestFarmInputService_Create_RejectsUnknownCategory(t *testing.T) {
	repo := newStubFarmInputRepo()
	svc := NewFarmInputService(repo, testLogger())

	_, err := svc.Create(context.Background(), ports.CreateFarmInput{
		Product: "Thing", Category: "gadget", Price: 10,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "seed") {
		t.Fatalf("expected category hint in message, got %q", err.Error())
	}
}

func TestFarmInputService_Create_RejectsNonFinitePrice(t *testing.T) {
	repo := newStubFarmInputRepo()
	svc := NewFarmInputService(repo, testLogger())

	for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := svc.Create(context.Background(), ports.CreateFarmInput{
			Product: "Urea", Category: "fertilizer", Price: price,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for price %v, got %v", price, err)
		}
	}
}

func TestFarmInputService_Update_CategoryChecked(t *testing.T) {
	repo := newStubFarmInputRepo()
	svc := NewFarmInputService(repo, testLogger())

	created, _ := svc.Create(context.Background(), ports.CreateFarmInput{
		Product: "Urea", Category: "fertilizer", Price: 27,
	})

	bad := "gadget"
	if _, err := svc.Update(context.Background(), created.ID, domain.FarmInputPatch{Category: &bad}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	good := "PESTICIDE"
	updated, err := svc.Update(context.Background(), created.ID, domain.FarmInputPatch{Category: &good})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Category != "pesticide" {
		t.Fatalf("category not normalised on update: %q", updated.Category)
	}
}

func TestFarmInputService_List_FilterNormalised(t *testing.T) {
	repo := newStubFarmInputRepo()
	svc := NewFarmInputService(repo, testLogger())

	_, _ = svc.Create(context.Background(), ports.CreateFarmInput{Product: "BRRI dhan29", Category: "seed", Price: 52})
	_, _ = svc.Create(context.Background(), ports.CreateFarmInput{Product: "Urea", Category: "fertilizer", Price: 27})

	out, err := svc.List(context.Background(), ports.FarmInputFilter{Category: " SEED "})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 || out[0].Product != "BRRI dhan29" {
		t.Fatalf("unexpected filter result: %+v", out)
	}
}
