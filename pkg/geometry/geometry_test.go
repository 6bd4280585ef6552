package geometry

import "testing"

func TestSizeOps(t *testing.T) {
	a := Size{Width: 10, Height: 20}
	b := Size{Width: 15, Height: 5}

	if got := a.WidthToMax(b); got != (Size{Width: 15, Height: 20}) {
		t.Errorf("WidthToMax = %v", got)
	}
	if got := a.HeightToMax(b); got != (Size{Width: 10, Height: 20}) {
		t.Errorf("HeightToMax = %v", got)
	}
	if got := a.AddWidth(b); got != (Size{Width: 25, Height: 20}) {
		t.Errorf("AddWidth = %v", got)
	}
	if got := a.AddHeight(b); got != (Size{Width: 10, Height: 25}) {
		t.Errorf("AddHeight = %v", got)
	}
	if !(Size{}).IsZero() || a.IsZero() {
		t.Error("IsZero misreported")
	}
}

func TestNewConstraintsRaisesPreferred(t *testing.T) {
	c := NewConstraints(Size{Width: 30, Height: 40}, Size{Width: 10, Height: 50})
	if c.Preferred != (Size{Width: 30, Height: 50}) {
		t.Errorf("preferred not raised to minimum: %v", c.Preferred)
	}
	if c.Minimum != (Size{Width: 30, Height: 40}) {
		t.Errorf("minimum changed: %v", c.Minimum)
	}
}

func TestConstraintsAggregation(t *testing.T) {
	a := NewConstraints(Size{Width: 10, Height: 20}, Size{Width: 10, Height: 20})
	b := NewConstraints(Size{Width: 15, Height: 5}, Size{Width: 20, Height: 5})

	vbox := Constraints{}.WidthToMax(a).AddHeight(a).WidthToMax(b).AddHeight(b)
	if vbox.Minimum != (Size{Width: 15, Height: 25}) {
		t.Errorf("vbox minimum = %v", vbox.Minimum)
	}
	if vbox.Preferred != (Size{Width: 20, Height: 25}) {
		t.Errorf("vbox preferred = %v", vbox.Preferred)
	}

	hbox := Constraints{}.HeightToMax(a).AddWidth(a).HeightToMax(b).AddWidth(b)
	if hbox.Minimum != (Size{Width: 25, Height: 20}) {
		t.Errorf("hbox minimum = %v", hbox.Minimum)
	}

	if !(Constraints{}).IsZero() || a.IsZero() {
		t.Error("IsZero misreported")
	}
}
