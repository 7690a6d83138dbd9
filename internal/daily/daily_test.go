package daily

import (
	"testing"
	"time"

	"dyele/internal/catalog"
)

func TestPolyHasherGoldenValues(t *testing.T) {
	h := PolyHasher{}
	cases := map[string]uint32{
		"":    0,
		"a":   97,
		"ab":  3105,
		"abc": 96354,
	}
	for in, want := range cases {
		if got := h.Sum(in); got != want {
			t.Fatalf("Sum(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestPolyHasherIsStable(t *testing.T) {
	h := PolyHasher{}
	for _, key := range []string{"2026-01-14", "2026-01-15", "2026-12-31"} {
		if h.Sum(key) != h.Sum(key) {
			t.Fatalf("hash of %q not stable", key)
		}
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestSelectDailyIsDeterministic(t *testing.T) {
	c := testCatalog(t)
	for _, key := range []string{"2026-01-14", "2026-02-09", "2026-08-31"} {
		first := SelectDaily(c, key)
		for i := 0; i < 5; i++ {
			if got := SelectDaily(c, key); got.ID != first.ID {
				t.Fatalf("SelectDaily(%q) changed between calls: %q vs %q", key, first.ID, got.ID)
			}
		}
	}
}

func TestSelectDailyCoversCatalogBounds(t *testing.T) {
	c := testCatalog(t)
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		key := start.AddDate(0, 0, i).Format(DayKeyLayout)
		d := SelectDaily(c, key)
		if _, ok := c.ByID(d.ID); !ok {
			t.Fatalf("selected dye %q not in catalog", d.ID)
		}
	}
}

func TestSelectRandomStaysInBounds(t *testing.T) {
	c := testCatalog(t)
	for i := 0; i < 100; i++ {
		d := SelectRandom(c)
		if _, ok := c.ByID(d.ID); !ok {
			t.Fatalf("random dye %q not in catalog", d.ID)
		}
	}
}

func fixedClock(t *testing.T, instant time.Time) *Clock {
	t.Helper()
	c, err := NewClockAt(func() time.Time { return instant })
	if err != nil {
		t.Fatalf("new clock: %v", err)
	}
	return c
}

func TestDayKeyUsesPuzzleTimezone(t *testing.T) {
	// 03:30 UTC on June 2 is still June 1 in Chicago (UTC-5 during CDT).
	c := fixedClock(t, time.Date(2026, time.June, 2, 3, 30, 0, 0, time.UTC))
	if got := c.DayKey(); got != "2026-06-01" {
		t.Fatalf("day key = %q, want 2026-06-01", got)
	}
	if got := c.DayKeyOffset(1); got != "2026-05-31" {
		t.Fatalf("offset day key = %q, want 2026-05-31", got)
	}
}

func TestUntilNextDayOrdinaryDay(t *testing.T) {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		t.Fatal(err)
	}
	c := fixedClock(t, time.Date(2026, time.June, 1, 18, 0, 0, 0, loc))
	if got := c.UntilNextDay(); got != 6*time.Hour {
		t.Fatalf("until next day = %v, want 6h", got)
	}
}

func TestUntilNextDayAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		t.Fatal(err)
	}
	// US DST starts 2026-03-08: that day is 23 real hours long.
	spring := fixedClock(t, time.Date(2026, time.March, 8, 0, 0, 0, 0, loc))
	if got := spring.UntilNextDay(); got != 23*time.Hour {
		t.Fatalf("spring-forward day length = %v, want 23h", got)
	}
	// US DST ends 2026-11-01: that day is 25 real hours long.
	fall := fixedClock(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, loc))
	if got := fall.UntilNextDay(); got != 25*time.Hour {
		t.Fatalf("fall-back day length = %v, want 25h", got)
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                  "00:00:00",
		-time.Second:                       "00:00:00",
		61 * time.Second:                   "00:01:01",
		5*time.Hour + 4*time.Minute + 3*time.Second: "05:04:03",
		25 * time.Hour:                     "25:00:00",
	}
	for in, want := range cases {
		if got := FormatCountdown(in); got != want {
			t.Fatalf("FormatCountdown(%v) = %q, want %q", in, got, want)
		}
	}
}
