package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/screening"
	"github.com/sw33tLie/vitalis/pkg/storage"
)

func main() {
	// Usage: go run *.go -face yes -arm no -speech yes -time yes -lang hi

	face := flag.String("face", "no", "Face drooping (yes/no)")
	arm := flag.String("arm", "no", "Arm weakness (yes/no)")
	speech := flag.String("speech", "no", "Speech difficulty (yes/no)")
	onset := flag.String("time", "no", "Symptoms started within 3 hours (yes/no)")
	lang := flag.String("lang", "en", "Language (en/hi)")

	// Parse the command-line flags
	flag.Parse()

	var answers []fast.Answer
	for _, v := range []string{*face, *arm, *speech, *onset} {
		a, err := fast.ParseAnswer(v)
		if err != nil {
			fmt.Println(err)
			return
		}
		answers = append(answers, a)
	}

	// Sessions accept any recorder; an in-memory history keeps nothing on disk
	store := history.NewStore(storage.NewMemory())
	s := screening.New(i18n.ParseLanguage(*lang), store)

	var rec *history.Record
	for _, a := range answers {
		r, err := s.Submit(context.Background(), a)
		if err != nil {
			fmt.Println(err)
			return
		}
		rec = r
	}

	tier := rec.Risk()
	fmt.Println(tier, "-", i18n.T(s.Language(), "risk."+tier.String()+".title"))
	fmt.Println(i18n.T(s.Language(), "risk."+tier.String()+".action"))
}
