// Package main prints the training days of a week and the progress made so far.
//
//	go run ./cmd/schedule -days 3 -start 2024-01-01 -now 2024-01-04
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitroutine/internal/routine"
	"github.com/2beens/fitroutine/internal/schedule"

	log "github.com/sirupsen/logrus"
)

func main() {
	days := flag.Int("days", 3, "training days per week [1-7]")
	start := flag.String("start", "", "first day of the routine week, YYYY-MM-DD (default today)")
	now := flag.String("now", "", "reference instant, RFC3339 or YYYY-MM-DD (default current time)")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	flag.Parse()

	nowTime := time.Now()
	if *now != "" {
		parsed, err := schedule.ParseInstant(*now)
		if err != nil {
			log.Fatalf("invalid -now: %s", err)
		}
		nowTime = parsed
	}

	startDate := schedule.DateOnly(nowTime)
	if *start != "" {
		parsed, err := schedule.ParseCalendarDate(*start)
		if err != nil {
			log.Fatalf("invalid -start: %s", err)
		}
		startDate = parsed
	}

	service := routine.NewService(routine.NewServiceParams{})
	progress, err := service.Progress(*days, startDate, nowTime)
	if err != nil {
		log.Fatalf("compute progress: %s", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(progress); err != nil {
			log.Fatalf("encode progress: %s", err)
		}
		return
	}

	endDate := schedule.AddDays(startDate, schedule.DaysInWeek-1)
	fmt.Printf("%s (%d days per week)\n", routine.FormatDateRange(startDate, endDate), *days)
	for i, weekday := range progress.TrainingDays {
		mark := " "
		if schedule.IsElapsed(progress.Dates[i].Time, nowTime) {
			mark = "x"
		}
		fmt.Printf("  [%s] Day %d - %s, %s\n", mark, i+1, weekday, progress.Dates[i])
	}
	fmt.Printf("progress: %.1f%%\n", progress.ProgressPercent)
}
