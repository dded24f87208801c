package chrome

import (
	"testing"
	"time"

	"solar-chrome-service/internal/adapters/clock"
)

func newTestService(t *testing.T) (*Service, *clock.MockClock) {
	t.Helper()

	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := NewService(clk, nil)
	t.Cleanup(svc.Close)
	return svc, clk
}

func TestLoadingOverlay(t *testing.T) {
	svc, _ := newTestService(t)

	if svc.Loading().Visible {
		t.Fatal("overlay visible before ShowLoading")
	}

	svc.ShowLoading("")
	state := svc.Loading()
	if !state.Visible {
		t.Fatal("overlay not visible after ShowLoading")
	}
	if state.Message != DefaultLoadingMessage {
		t.Fatalf("message = %q, want %q", state.Message, DefaultLoadingMessage)
	}

	svc.ShowLoading("데이터 로딩 중...")
	if got := svc.Loading().Message; got != "데이터 로딩 중..." {
		t.Fatalf("message = %q, want %q", got, "데이터 로딩 중...")
	}

	svc.HideLoading()
	if svc.Loading().Visible {
		t.Fatal("overlay still visible after HideLoading")
	}

	// hiding an already-hidden overlay is a no-op
	svc.HideLoading()
	if svc.Loading().Visible {
		t.Fatal("overlay visible after double HideLoading")
	}
}

func TestShowAlertStackOrder(t *testing.T) {
	svc, _ := newTestService(t)

	svc.ShowAlert("first", SeverityInfo)
	svc.ShowAlert("second", SeverityWarning)
	svc.ShowAlert("third", SeverityDanger)

	alerts := svc.Alerts()
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	if alerts[0].Text != "third" {
		t.Fatalf("top alert = %q, want %q", alerts[0].Text, "third")
	}
	if alerts[1].Text != "second" {
		t.Fatalf("middle alert = %q, want %q", alerts[1].Text, "second")
	}
	if alerts[2].Text != "first" {
		t.Fatalf("bottom alert = %q, want %q", alerts[2].Text, "first")
	}
}

func TestAlertAutoExpiry(t *testing.T) {
	svc, clk := newTestService(t)

	svc.ShowAlert("곧 사라집니다", SeverityInfo)
	if got := len(svc.Alerts()); got != 1 {
		t.Fatalf("expected 1 alert, got %d", got)
	}

	clk.Advance(4999 * time.Millisecond)
	if got := len(svc.Alerts()); got != 1 {
		t.Fatalf("alert expired early, got %d", got)
	}

	clk.Advance(1 * time.Millisecond)
	if got := len(svc.Alerts()); got != 0 {
		t.Fatalf("expected 0 alerts after expiry, got %d", got)
	}
}

func TestDismissCancelsExpiry(t *testing.T) {
	svc, clk := newTestService(t)

	first := svc.ShowAlert("first", SeverityInfo)
	clk.Advance(2 * time.Second)
	second := svc.ShowAlert("second", SeverityInfo)

	if !svc.Dismiss(first) {
		t.Fatal("Dismiss(first) = false, want true")
	}

	// the stopped timer must not fire and must not touch the other alert
	clk.Advance(3 * time.Second)
	alerts := svc.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].ID != second {
		t.Fatalf("surviving alert id = %d, want %d", alerts[0].ID, second)
	}

	clk.Advance(2 * time.Second)
	if got := len(svc.Alerts()); got != 0 {
		t.Fatalf("expected 0 alerts, got %d", got)
	}
}

func TestDismissAfterExpiry(t *testing.T) {
	svc, clk := newTestService(t)

	id := svc.ShowAlert("x", SeverityInfo)
	clk.Advance(5 * time.Second)

	if svc.Dismiss(id) {
		t.Fatal("Dismiss after expiry = true, want false")
	}
}

func TestShowAlertOutOfRangeSeverity(t *testing.T) {
	svc, _ := newTestService(t)

	svc.ShowAlert("x", Severity(42))

	alerts := svc.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Severity != SeverityInfo {
		t.Fatalf("severity = %v, want %v", alerts[0].Severity, SeverityInfo)
	}
}

func TestAlertCreatedAt(t *testing.T) {
	svc, clk := newTestService(t)

	start := clk.Now()
	svc.ShowAlert("x", SeverityInfo)
	clk.Advance(1 * time.Second)
	svc.ShowAlert("y", SeverityInfo)

	alerts := svc.Alerts()
	if !alerts[1].CreatedAt.Equal(start) {
		t.Fatalf("first CreatedAt = %v, want %v", alerts[1].CreatedAt, start)
	}
	if !alerts[0].CreatedAt.Equal(start.Add(1 * time.Second)) {
		t.Fatalf("second CreatedAt = %v, want %v", alerts[0].CreatedAt, start.Add(1*time.Second))
	}
}

func TestCloseStopsTimers(t *testing.T) {
	svc, clk := newTestService(t)

	svc.ShowAlert("x", SeverityInfo)
	svc.Close()

	clk.Advance(10 * time.Second)
	if got := len(svc.Alerts()); got != 1 {
		t.Fatalf("expected alert to remain after Close, got %d", got)
	}
}
