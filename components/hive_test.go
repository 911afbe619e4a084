package components

import (
	"math"
	"testing"
)

func TestHiveHarvestBelowThreshold(t *testing.T) {
	h := Hive{Honey: 9.5, Wax: 0.95, Pollen: 1.9, Capacity: 5}
	w := Wallet{Money: 100}

	y, ok := h.Harvest(&w, 10)
	if ok {
		t.Fatal("harvest should fail below threshold")
	}
	if y != (Yield{}) {
		t.Errorf("expected empty yield, got %+v", y)
	}
	if h.Honey != 9.5 || h.Wax != 0.95 || h.Pollen != 1.9 {
		t.Errorf("hive changed on failed harvest: %+v", h)
	}
	if w != (Wallet{Money: 100}) {
		t.Errorf("wallet changed on failed harvest: %+v", w)
	}
}

func TestHiveHarvestTransfersEverything(t *testing.T) {
	h := Hive{Honey: 12, Wax: 1.2, Pollen: 2.4}
	w := Wallet{Money: 50, Honey: 3, Wax: 1, Pollen: 0.5}

	y, ok := h.Harvest(&w, 10)
	if !ok {
		t.Fatal("harvest should succeed at 12 honey")
	}
	if y.Honey != 12 || y.Wax != 1.2 || y.Pollen != 2.4 {
		t.Errorf("unexpected yield %+v", y)
	}
	if h.Honey != 0 || h.Wax != 0 || h.Pollen != 0 {
		t.Errorf("hive not zeroed: %+v", h)
	}
	if w.Honey != 15 || math.Abs(w.Wax-2.2) > 1e-9 || math.Abs(w.Pollen-2.9) > 1e-9 {
		t.Errorf("wallet did not gain exact amounts: %+v", w)
	}
	if w.Money != 50 {
		t.Errorf("harvest must not touch money, got %f", w.Money)
	}
}

func TestHiveHarvestAtThreshold(t *testing.T) {
	h := Hive{Honey: 10}
	var w Wallet
	if _, ok := h.Harvest(&w, 10); !ok {
		t.Error("harvest should succeed with honey exactly at threshold")
	}
}

func TestHiveProduce(t *testing.T) {
	var h Hive
	h.Produce(1.0, 0.1, 0.2)
	h.Produce(0, 0.1, 0.2)
	if h.Honey != 1.0 || math.Abs(h.Wax-0.1) > 1e-12 || math.Abs(h.Pollen-0.2) > 1e-12 {
		t.Errorf("unexpected production result %+v", h)
	}
}

func TestHiveSteal(t *testing.T) {
	tests := []struct {
		name      string
		honey     float64
		wantTaken float64
		wantLeft  float64
	}{
		{"plenty", 12, 5, 7},
		{"exactly five", 5, 5, 0},
		{"less than five", 3.5, 3.5, 0},
		{"empty", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Hive{Honey: tc.honey}
			taken := h.Steal(5)
			if taken != tc.wantTaken {
				t.Errorf("expected %f taken, got %f", tc.wantTaken, taken)
			}
			if h.Honey != tc.wantLeft {
				t.Errorf("expected %f left, got %f", tc.wantLeft, h.Honey)
			}
		})
	}
}

func TestHiveReceiveBee(t *testing.T) {
	h := Hive{Honey: 4}
	h.ReceiveBee()
	h.ReceiveBee()
	if h.Returns != 2 {
		t.Errorf("expected 2 returns, got %d", h.Returns)
	}
	if h.Honey != 4 {
		t.Errorf("bee return must not change production, honey=%f", h.Honey)
	}
}

func TestWalletSell(t *testing.T) {
	w := Wallet{Money: 10, Honey: 20, Wax: 2}

	amount, income := w.Sell(ResourceHoney, 1.5)
	if amount != 20 || income != 30 {
		t.Errorf("expected 20 sold for 30, got %f for %f", amount, income)
	}
	if w.Money != 40 || w.Honey != 0 {
		t.Errorf("unexpected wallet after sale: %+v", w)
	}

	amount, income = w.Sell(ResourcePollen, 2.5)
	if amount != 0 || income != 0 {
		t.Errorf("selling empty stock should be a no-op, got %f/%f", amount, income)
	}
}

func TestWalletSpend(t *testing.T) {
	w := Wallet{Money: 20}
	if w.Spend(25) {
		t.Error("spend beyond balance should fail")
	}
	if !w.Spend(20) || w.Money != 0 {
		t.Errorf("spend of full balance should succeed, money=%f", w.Money)
	}
}
