package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"chili-report/internal/config"
	"chili-report/internal/pipeline"
	"chili-report/internal/report"
	"chili-report/internal/sftpclient"
	"chili-report/internal/store"
)

func main() {
	var (
		outDir     = flag.String("out-dir", "output_data", "directory for the generated reports")
		feedURL    = flag.String("feed-url", "", "override FEED_URL from the environment")
		lenient    = flag.Bool("lenient", false, "skip malformed feed lines instead of failing the run")
		compress   = flag.Bool("compress", false, "write brotli sidecars next to the reports")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated reports via SFTP")
		timeout    = flag.Duration("timeout", 5*time.Minute, "overall run timeout")
		history    = flag.Int("history", 0, "print the last N tracked runs and exit")
	)
	flag.Parse()

	log.SetFlags(log.LstdFlags)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if *history > 0 {
		if err := printHistory(*history); err != nil {
			log.Fatalf("History failed: %v", err)
		}
		return
	}

	start := time.Now()
	err := run(*outDir, *feedURL, *lenient, *compress, *uploadSFTP, *timeout)
	log.Printf("Execution finished in %s", time.Since(start))

	if err != nil {
		log.Fatalf("Job failed: %v", err)
	}
}

func printHistory(limit int) error {
	cfg := config.Load()
	if cfg.StateDB == "" {
		return fmt.Errorf("run tracking is disabled: set CHILI_STATE_DB")
	}

	st, err := store.Open(cfg.StateDB)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(limit)
	if err != nil {
		return err
	}

	for _, r := range runs {
		line := fmt.Sprintf("%s  %s  %-9s fetched=%d matched=%d unique=%d skipped=%d",
			r.StartedAt.Format(time.RFC3339), r.ID, r.Status,
			r.Counts.Fetched, r.Counts.Matched, r.Counts.UniqueRows, r.Counts.Skipped)
		if r.Error != "" {
			line += "  error=" + r.Error
		}
		fmt.Println(line)
	}
	return nil
}

func run(outDir, feedURL string, lenient, compress, uploadSFTP bool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := config.Load()
	if feedURL != "" {
		cfg.FeedURL = feedURL
	}

	// Run tracking is optional: CHILI_STATE_DB unset means no history.
	var st *store.Store
	var runID string
	if cfg.StateDB != "" {
		var err error
		st, err = store.Open(cfg.StateDB)
		if err != nil {
			return err
		}
		defer st.Close()

		runID, err = st.StartRun(cfg.FeedURL)
		if err != nil {
			return err
		}
		log.Printf("Tracking run %s in %s", runID, cfg.StateDB)
	}

	stats, err := pipeline.Run(ctx, pipeline.Config{
		FeedURL: cfg.FeedURL,
		OutDir:  outDir,
		Lenient: lenient,
	})
	if err != nil {
		if st != nil {
			if ferr := st.FailRun(runID, err); ferr != nil {
				log.Printf("WARN: %v", ferr)
			}
		}
		return err
	}

	if st != nil {
		err := st.FinishRun(runID, store.Counts{
			Fetched:    stats.Fetched,
			Matched:    stats.Matched,
			UniqueRows: stats.UniqueRows,
			Skipped:    stats.SkippedRecords + stats.SkippedLines,
		})
		if err != nil {
			log.Printf("WARN: %v", err)
		}
	}

	reports := []string{stats.RecipesPath, stats.AveragesPath}

	if compress {
		for _, p := range reports {
			sidecar, err := report.Compress(p)
			if err != nil {
				return err
			}
			log.Printf("Compressed %s -> %s", p, sidecar)
		}
	}

	if uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(ctx, 2*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadFiles(upCtx, upCfg, reports); err != nil {
			return err
		}
		log.Printf("Uploaded %d reports to sftp://%s:%d%s", len(reports), upCfg.Host, upCfg.Port, upCfg.RemoteDir)
	}

	return nil
}
