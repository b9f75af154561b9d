// Command validate loads the question sources and answer datasets the
// gateway would serve and reports join coverage: how many questions can
// reach an answer record, and through which key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gateprep/gatebank/internal/answers"
	"github.com/gateprep/gatebank/internal/catalog"
)

func main() {
	dataDir := flag.String("data-dir", "./data", "directory holding question JSON files")
	sources := flag.String("sources", "questions_enriched_v1.json,questions_v1.json", "preference-ordered question files")
	answersPath := flag.String("answers", "", "answers-by-uid dataset path")
	examPath := flag.String("answers-by-exam-uid", "", "answers-by-exam-uid dataset path")
	unsupportedPath := flag.String("unsupported", "", "unsupported question uids path")
	flag.Parse()

	var srcs []catalog.Source
	for _, name := range strings.Split(*sources, ",") {
		if name = strings.TrimSpace(name); name != "" {
			srcs = append(srcs, catalog.NewFileSource(*dataDir, name))
		}
	}

	cat, err := catalog.Load(context.Background(), srcs...)
	if err != nil {
		log.Fatalf("load questions: %v", err)
	}
	fmt.Printf("catalog: %d questions from %s\n", cat.Len(), cat.SourceName())

	key, err := answers.Load(*answersPath, *examPath, *unsupportedPath)
	if err != nil {
		log.Fatalf("load answers: %v", err)
	}
	byQ, byA, byE, uns := key.Counts()
	fmt.Printf("answer key: %d by question uid, %d by answer uid, %d by exam uid, %d unsupported\n", byQ, byA, byE, uns)
	if n := key.Skipped(); n > 0 {
		fmt.Printf("answer key: skipped %d undecodable dataset entries\n", n)
	}

	var resolved, unsupported, unresolved, noIdentity int
	for _, q := range cat.Questions() {
		rec, ok := key.Resolve(q)
		switch {
		case ok && rec.Kind == answers.KindUnsupported:
			unsupported++
		case ok:
			resolved++
		default:
			unresolved++
			if !answers.QuestionIdentity(q).HasIdentity {
				noIdentity++
			}
		}
	}
	fmt.Printf("resolved: %d  unsupported: %d  unresolved: %d (of which %d have no join keys)\n",
		resolved, unsupported, unresolved, noIdentity)

	if cat.Len() > 0 && resolved == 0 && byQ+byA+byE > 0 {
		fmt.Fprintln(os.Stderr, "warning: answer datasets loaded but nothing resolved; check uid schemes")
		os.Exit(1)
	}
}
