// internal/classifier/classifier_test.go
package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tamzrod/quakelight/internal/config"
	"github.com/tamzrod/quakelight/internal/fetcher"
)

// ---- fake fetcher ----

type fakeFetcher struct {
	lens  []int // payload length per call, in order
	fail  int   // 1-based call index that fails; 0 = never
	mags  []float64
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, q fetcher.Query) ([]byte, error) {
	f.calls++
	f.mags = append(f.mags, q.MinMagnitude)
	if f.calls == f.fail {
		return nil, &fetcher.FetchError{Kind: fetcher.KindTimeout, URL: q.URL(), Err: errors.New("boom")}
	}
	return []byte(strings.Repeat("x", f.lens[f.calls-1])), nil
}

func newClassifier(t *testing.T, f *fakeFetcher) *Classifier {
	t.Helper()
	c, err := New(f, fetcher.NewQuery(config.Default().Query, 0))
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return c
}

// ---- tests ----

func TestClassify_Levels(t *testing.T) {
	cases := []struct {
		name    string
		lens    []int
		want    Level
		fetches int
	}{
		{"high", []int{301}, High, 1},
		{"moderate", []int{250}, Moderate, 1},
		{"high boundary is strict", []int{300}, Moderate, 1},
		{"moderate boundary falls through", []int{200, 201}, Mild, 2},
		{"mild", []int{150, 250}, Mild, 2},
		{"low", []int{150, 100}, Low, 2},
		{"mild boundary is strict", []int{0, 200}, Low, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeFetcher{lens: tc.lens}
			res, err := newClassifier(t, f).Classify(context.Background())
			if err != nil {
				t.Fatalf("Classify err=%v", err)
			}
			if res.Level != tc.want {
				t.Fatalf("level: got=%s want=%s", res.Level, tc.want)
			}
			if f.calls != tc.fetches || res.Fetches != tc.fetches {
				t.Fatalf("fetches: got=%d/%d want=%d", f.calls, res.Fetches, tc.fetches)
			}
		})
	}
}

func TestClassify_MagnitudeOrder(t *testing.T) {
	f := &fakeFetcher{lens: []int{150, 250}}
	res, err := newClassifier(t, f).Classify(context.Background())
	if err != nil {
		t.Fatalf("Classify err=%v", err)
	}

	if len(f.mags) != 2 || f.mags[0] != 3.5 || f.mags[1] != 2.0 {
		t.Fatalf("magnitudes: got=%v want=[3.5 2]", f.mags)
	}
	if res.PrimaryLen != 150 || res.SecondaryLen != 250 {
		t.Fatalf("lengths: got=%d/%d want=150/250", res.PrimaryLen, res.SecondaryLen)
	}
}

func TestClassify_NoSecondaryOnHigh(t *testing.T) {
	f := &fakeFetcher{lens: []int{301}}
	res, _ := newClassifier(t, f).Classify(context.Background())

	if res.SecondaryLen != -1 {
		t.Fatalf("secondary length recorded without a fetch: %d", res.SecondaryLen)
	}
}

func TestClassify_PrimaryFailure(t *testing.T) {
	f := &fakeFetcher{lens: []int{301}, fail: 1}
	res, err := newClassifier(t, f).Classify(context.Background())

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res.Level.Valid() || res.Level == High {
		t.Fatalf("failed cycle carries a level: %s", res.Level)
	}
	if fetcher.KindOf(err) != fetcher.KindTimeout {
		t.Fatalf("cause lost: got=%s want=timeout", fetcher.KindOf(err))
	}
	if f.calls != 1 {
		t.Fatalf("fetches after failure: got=%d want=1", f.calls)
	}
}

func TestClassify_SecondaryFailure(t *testing.T) {
	f := &fakeFetcher{lens: []int{10, 500}, fail: 2}
	res, err := newClassifier(t, f).Classify(context.Background())

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res.Level != 0 {
		t.Fatalf("failed cycle carries a level: %s", res.Level)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for i := 0; i < 5; i++ {
		f := &fakeFetcher{lens: []int{150, 250}}
		res, err := newClassifier(t, f).Classify(context.Background())
		if err != nil || res.Level != Mild {
			t.Fatalf("run %d: got=%s err=%v", i, res.Level, err)
		}
	}
}

func TestDecide_Pure(t *testing.T) {
	for l1 := 0; l1 < 400; l1 += 7 {
		for l2 := 0; l2 < 400; l2 += 11 {
			a := Decide(l1, l2)
			b := Decide(l1, l2)
			if a != b {
				t.Fatalf("Decide(%d,%d) not stable", l1, l2)
			}
			if l1 > 200 && (a == Mild || a == Low) {
				t.Fatalf("Decide(%d,%d)=%s consulted secondary", l1, l2, a)
			}
		}
	}
}

func TestLevel_Order(t *testing.T) {
	if !High.MoreSevere(Moderate) || !Moderate.MoreSevere(Mild) || !Mild.MoreSevere(Low) {
		t.Fatalf("severity order broken")
	}
	var none Level
	if none.MoreSevere(Low) || !Low.MoreSevere(none) {
		t.Fatalf("zero level ranked as a classification")
	}
}

func TestLevel_ZeroIsNotHigh(t *testing.T) {
	var l Level
	if l == High || l.Valid() {
		t.Fatalf("zero Level: got=%s valid=%v", l, l.Valid())
	}
	for _, l := range []Level{High, Moderate, Mild, Low} {
		if !l.Valid() {
			t.Fatalf("%s not valid", l)
		}
	}
	if lv, ok := DecidePrimary(150); ok || lv.Valid() {
		t.Fatalf("inconclusive primary: got=%s ok=%v", lv, ok)
	}
}

func TestNew_NilFetcher(t *testing.T) {
	if _, err := New(nil, fetcher.Query{}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
