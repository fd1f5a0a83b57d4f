package component

import (
	"errors"
	"testing"

	"github.com/lixenwraith/goldberg/event"
)

// TestBasketEndContactClearsWait verifies leaving the base resets the timer
func TestBasketEndContactClearsWait(t *testing.T) {
	host := newTestHost()
	b := NewBasket()
	b.SetPosition(0, 20)
	host.install(b)

	contact := newFakeContact()
	b.BeginContact(contact)
	b.Update(0.5)
	if !b.Occupied() || b.Duration() != 0.5 {
		t.Fatalf("Expected occupied for 0.5s, got occupied=%v duration=%f", b.Occupied(), b.Duration())
	}

	b.EndContact(contact)
	if b.Occupied() || b.Duration() != 0 {
		t.Errorf("Expected cleared wait, got occupied=%v duration=%f", b.Occupied(), b.Duration())
	}

	// Returning starts the wait over
	b.BeginContact(contact)
	b.Update(0.5)
	if !b.Occupied() || b.Duration() != 0.5 {
		t.Errorf("Expected a fresh 0.5s wait, got occupied=%v duration=%f", b.Occupied(), b.Duration())
	}
	if b.Fired() != 0 {
		t.Errorf("Expected no launch after returning, got %d", b.Fired())
	}
}

// TestBasketFiresOnDelayFrame verifies the launch lands on the frame that completes the delay
func TestBasketFiresOnDelayFrame(t *testing.T) {
	for _, rate := range []float64{24, 30, 60} {
		host := newTestHost()
		b := NewBasket()
		b.SetName("basket")
		b.SetPosition(0, 20)
		host.install(b)
		b.BeginContact(newFakeContact())

		// Nothing rests on the base, so the launch shows up as ErrBasketEmpty
		fired := func() (hit bool) {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok || !errors.Is(err, ErrBasketEmpty) {
						t.Errorf("Expected ErrBasketEmpty panic, got %v", r)
					}
					hit = true
				}
			}()
			b.Update(1.0 / rate)
			return false
		}

		want := int(rate)
		got := 0
		for n := 1; n <= want+2; n++ {
			if fired() {
				got = n
				break
			}
		}
		if got != want {
			t.Errorf("Rate %v: expected launch on update %d, got %d", rate, want, got)
		}
	}
}

// TestBasketFiresEmpty verifies firing with nothing on the base panics
func TestBasketFiresEmpty(t *testing.T) {
	host := newTestHost()
	b := NewBasket()
	b.SetName("basket")
	b.SetPosition(0, 20)
	host.install(b)
	b.BeginContact(newFakeContact())

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrBasketEmpty) {
			t.Errorf("Expected ErrBasketEmpty panic, got %v", r)
		}
	}()
	b.Update(1.0)
	t.Error("Expected panic")
}

// TestBasketLaunchesBall verifies a dropped ball is held then shot upward
func TestBasketLaunchesBall(t *testing.T) {
	host := newTestHost()
	b := NewBasket()
	b.SetName("basket")
	b.SetPosition(0, 20)

	ball := NewBody()
	ball.Circle(6)
	ball.SetDynamic()
	ball.SetPhysics(1, 0.5, 0)
	ball.SetPosition(0, 60)

	host.install(b)
	host.install(ball)

	const dt = 1.0 / 30
	for frame := 0; frame < 120 && b.Fired() == 0; frame++ {
		host.step(dt, b, ball)
	}

	if b.Fired() != 1 {
		t.Fatalf("Expected one launch, got %d", b.Fired())
	}
	if v := ball.Body().LinearVelocity(); v.Y < 10 {
		t.Errorf("Expected upward velocity above 10 m/s after launch, got %f", v.Y)
	}
	if b.Occupied() || b.Duration() != 0 {
		t.Errorf("Expected wait cleared after launch, got occupied=%v duration=%f", b.Occupied(), b.Duration())
	}

	var fired int
	for _, e := range host.events {
		if e.Type == event.BasketFired {
			fired++
			if e.Source != "basket" {
				t.Errorf("Expected source basket, got %q", e.Source)
			}
		}
	}
	if fired != 1 {
		t.Errorf("Expected one BasketFired event, got %d", fired)
	}
}

func TestBasketImpulse(t *testing.T) {
	imp := Impulse()
	if imp.X != 0.0425 || imp.Y != 0.0425*7 {
		t.Errorf("Expected impulse (0.0425, 0.2975), got %+v", imp)
	}
}
