package fast

import (
	"fmt"
	"strings"
)

// RiskTier is ordered by severity: Low < Medium < High.
type RiskTier int

const (
	Low RiskTier = iota
	Medium
	High
)

func (t RiskTier) String() string {
	switch t {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	}
	return fmt.Sprintf("RiskTier(%d)", int(t))
}

func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *RiskTier) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "LOW":
		*t = Low
	case "MEDIUM":
		*t = Medium
	case "HIGH":
		*t = High
	default:
		return fmt.Errorf("unknown risk tier %q", string(b))
	}
	return nil
}

// Classify derives the risk tier from a response set. HIGH needs at least two
// positive answers and a positive time answer; a record with two positives
// but time=no stays MEDIUM.
func Classify(answers ResponseSet) RiskTier {
	yes := answers.YesCount()
	if yes >= 2 && answers.Time == Yes {
		return High
	}
	if yes >= 1 {
		return Medium
	}
	return Low
}
