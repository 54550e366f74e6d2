package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func printSummary(r *run) {
	ds := r.dataset
	fmt.Println()
	color.New(color.FgCyan, color.Bold).Println("📊 Summary")
	fmt.Printf("  Persons:    %s\n", humanize.Comma(int64(len(ds.Persons))))
	fmt.Printf("  Marriages:  %s (%s witnesses)\n", humanize.Comma(int64(len(ds.Marriages))), humanize.Comma(int64(len(ds.Witnesses))))
	fmt.Printf("  Deaths:     %s\n", humanize.Comma(int64(len(ds.Deaths))))
	fmt.Printf("  Elapsed:    %s\n", r.elapsed.Round(time.Millisecond))
	if r.misses > 0 {
		color.Yellow("  ⚠️  %d unresolved references left out of documents", r.misses)
	}
}
