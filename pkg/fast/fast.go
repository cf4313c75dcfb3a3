// Package fast holds the FAST (Face, Arm, Speech, Time) answer model and the
// risk rule applied to it.
package fast

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Answer is a single yes/no response. The zero value means unanswered.
type Answer string

const (
	Unanswered Answer = ""
	Yes        Answer = "yes"
	No         Answer = "no"
)

// ParseAnswer accepts "yes"/"no" (any case, surrounding spaces ignored) plus the
// short forms "y"/"n".
func ParseAnswer(s string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return Yes, nil
	case "no", "n":
		return No, nil
	}
	return Unanswered, fmt.Errorf("invalid answer %q (expected yes or no)", s)
}

func (a Answer) Answered() bool {
	return a == Yes || a == No
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Unanswered
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Answer(s) {
	case Yes, No, Unanswered:
		*a = Answer(s)
		return nil
	}
	return fmt.Errorf("invalid answer %q", s)
}

// Key identifies one of the four FAST questions.
type Key string

const (
	Face   Key = "face"
	Arm    Key = "arm"
	Speech Key = "speech"
	Time   Key = "time"
)

// Keys lists the question keys in display order.
var Keys = []Key{Face, Arm, Speech, Time}

// ResponseSet maps each FAST key to its answer.
type ResponseSet struct {
	Face   Answer `json:"face"`
	Arm    Answer `json:"arm"`
	Speech Answer `json:"speech"`
	Time   Answer `json:"time"`
}

// Get returns the answer stored under k. Unknown keys read as unanswered.
func (r ResponseSet) Get(k Key) Answer {
	switch k {
	case Face:
		return r.Face
	case Arm:
		return r.Arm
	case Speech:
		return r.Speech
	case Time:
		return r.Time
	}
	return Unanswered
}

// With returns a copy of r with k set to a.
func (r ResponseSet) With(k Key, a Answer) ResponseSet {
	switch k {
	case Face:
		r.Face = a
	case Arm:
		r.Arm = a
	case Speech:
		r.Speech = a
	case Time:
		r.Time = a
	}
	return r
}

// Complete reports whether all four keys hold yes or no.
func (r ResponseSet) Complete() bool {
	for _, k := range Keys {
		if !r.Get(k).Answered() {
			return false
		}
	}
	return true
}

func (r ResponseSet) YesCount() int {
	n := 0
	for _, k := range Keys {
		if r.Get(k) == Yes {
			n++
		}
	}
	return n
}
