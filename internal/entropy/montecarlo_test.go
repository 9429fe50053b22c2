package entropy

import (
	"math"
	"math/rand"
	"testing"
)

func TestMonteCarloPiSingleGroupHit(t *testing.T) {
	// The origin is inside the quarter-circle.
	est := monteCarloPi(make([]byte, 6))
	if !est.Defined {
		t.Fatal("expected defined estimate for one full group")
	}
	if est.Value != 4.0 {
		t.Errorf("expected 4.0 for a single hit, got %v", est.Value)
	}
}

func TestMonteCarloPiSingleGroupMiss(t *testing.T) {
	// (2^24-1, 2^24-1) lies outside the radius.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	est := monteCarloPi(data)
	if !est.Defined {
		t.Fatal("expected defined estimate for one full group")
	}
	if est.Value != 0.0 {
		t.Errorf("expected 0.0 for a single miss, got %v", est.Value)
	}
}

func TestMonteCarloPiLeftoverBytesDiscarded(t *testing.T) {
	// 11 bytes hold exactly one group; the trailing 5 bytes must not
	// change the group count even though they are all 0xFF.
	data := make([]byte, 11)
	for i := 6; i < 11; i++ {
		data[i] = 0xFF
	}
	est := monteCarloPi(data)
	if !est.Defined || est.Value != 4.0 {
		t.Errorf("expected single-group hit, got %+v", est)
	}
}

func TestMonteCarloPiInsufficientBytes(t *testing.T) {
	for size := 0; size < 6; size++ {
		if est := monteCarloPi(make([]byte, size)); est.Defined {
			t.Errorf("expected undefined estimate for %d bytes", size)
		}
	}
}

func TestMonteCarloPiConvergesOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 6*200000)
	rng.Read(data)

	est := monteCarloPi(data)
	if !est.Defined {
		t.Fatal("expected defined estimate")
	}
	if math.Abs(est.Value-math.Pi) > 0.05 {
		t.Errorf("estimate %v too far from pi", est.Value)
	}
	if piErrorPercent(est.Value) > 2.0 {
		t.Errorf("error percent %v unexpectedly high", piErrorPercent(est.Value))
	}
}
