package fast

import (
	"encoding/json"
	"testing"
)

func rs(face, arm, speech, time Answer) ResponseSet {
	return ResponseSet{Face: face, Arm: arm, Speech: speech, Time: time}
}

// allSets enumerates the 16 fully answered response sets.
func allSets() []ResponseSet {
	var out []ResponseSet
	vals := []Answer{Yes, No}
	for _, f := range vals {
		for _, a := range vals {
			for _, s := range vals {
				for _, t := range vals {
					out = append(out, rs(f, a, s, t))
				}
			}
		}
	}
	return out
}

func TestClassifyExamples(t *testing.T) {
	cases := []struct {
		name string
		in   ResponseSet
		want RiskTier
	}{
		{"all no", rs(No, No, No, No), Low},
		{"face only", rs(Yes, No, No, No), Medium},
		{"face arm time", rs(Yes, Yes, No, Yes), High},
		{"all yes", rs(Yes, Yes, Yes, Yes), High},
		{"two yes without time", rs(Yes, Yes, No, No), Medium},
		{"time only", rs(No, No, No, Yes), Medium},
		{"unanswered counts as not yes", rs(Yes, Unanswered, Unanswered, Unanswered), Medium},
		{"empty", ResponseSet{}, Low},
	}
	for _, c := range cases {
		if got := Classify(c.in); got != c.want {
			t.Fatalf("%s: Classify(%+v)=%s, want %s", c.name, c.in, got, c.want)
		}
	}
}

func TestClassifyTimeGatesHigh(t *testing.T) {
	for _, set := range allSets() {
		got := Classify(set)
		if set.Time == No && got == High {
			t.Fatalf("time=no must never be HIGH: %+v", set)
		}
		if set.Time == Yes && set.YesCount() >= 2 && got != High {
			t.Fatalf("time=yes with %d positives should be HIGH, got %s", set.YesCount(), got)
		}
	}
}

func TestRiskTierOrdering(t *testing.T) {
	if !(Low < Medium && Medium < High) {
		t.Fatalf("tiers are not ordered by severity")
	}
	var tier RiskTier
	if err := tier.UnmarshalText([]byte("medium")); err != nil || tier != Medium {
		t.Fatalf("UnmarshalText(medium) = %v, %v", tier, err)
	}
	if err := tier.UnmarshalText([]byte("severe")); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}

func TestParseAnswer(t *testing.T) {
	cases := []struct {
		in      string
		want    Answer
		wantErr bool
	}{
		{"yes", Yes, false},
		{" Y ", Yes, false},
		{"NO", No, false},
		{"n", No, false},
		{"maybe", Unanswered, true},
		{"", Unanswered, true},
	}
	for _, c := range cases {
		got, err := ParseAnswer(c.in)
		if (err != nil) != c.wantErr || got != c.want {
			t.Fatalf("ParseAnswer(%q) = %q, %v", c.in, got, err)
		}
	}
}

func TestResponseSetJSON(t *testing.T) {
	var set ResponseSet
	if err := json.Unmarshal([]byte(`{"face":"yes","arm":null,"speech":"no","time":"yes"}`), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if set.Face != Yes || set.Arm != Unanswered || set.Speech != No || set.Time != Yes {
		t.Fatalf("unexpected set: %+v", set)
	}
	if set.Complete() {
		t.Fatalf("set with null arm should not be complete")
	}
	if err := json.Unmarshal([]byte(`{"face":"perhaps"}`), &set); err == nil {
		t.Fatalf("expected error for unknown answer value")
	}
}

func TestResponseSetWith(t *testing.T) {
	var set ResponseSet
	for _, k := range Keys {
		set = set.With(k, Yes)
	}
	if !set.Complete() || set.YesCount() != 4 {
		t.Fatalf("expected all four yes, got %+v", set)
	}
	if set.Get(Key("elbow")) != Unanswered {
		t.Fatalf("unknown key should read as unanswered")
	}
}
