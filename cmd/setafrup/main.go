package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dbai-tuwien/setafrup/internal/engine"
	"github.com/dbai-tuwien/setafrup/internal/parse"
	"github.com/dbai-tuwien/setafrup/internal/report"
)

// Exit codes, matching the original tool's signal/timeout/verification
// surface as closely as Go's process model allows.
const (
	exitOK                  = 0
	exitConfigError         = 2
	exitInterrupted         = 4
	exitParseFailure        = 8
	exitTimeout             = 32
	exitVerificationFailure = 64
	exitUnexpected          = 128
)

type flags struct {
	instance    string
	description string
	proof       string
	required    string
	semantics   string
	timeout     int
	threads     int
	used        bool
	complete    bool
}

func main() {
	os.Exit(runCLI())
}

func runCLI() int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	var f flags
	cmd := &cobra.Command{
		Use:           "setafrup",
		Short:         "Verify a SETAF refutation proof",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&f.instance, "instance", "i", "", "framework instance file (required)")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "argument description file")
	cmd.Flags().StringVarP(&f.proof, "proof", "p", "", "proof file (required)")
	cmd.Flags().StringVarP(&f.required, "required", "r", "", "required-arguments file")
	cmd.Flags().StringVarP(&f.semantics, "semantics", "s", "", "semantics: Admissible or Stable (required)")
	cmd.Flags().IntVarP(&f.timeout, "timeout", "t", 0, "timeout in seconds (0 = none)")
	cmd.Flags().IntVarP(&f.threads, "threads", "w", 1, "number of worker goroutines")
	cmd.Flags().BoolVarP(&f.used, "used", "u", false, "print used clause indices on success")
	cmd.Flags().BoolVarP(&f.complete, "complete", "c", false, "verify every proof clause, not just reachable ones")
	_ = cmd.MarkFlagRequired("instance")
	_ = cmd.MarkFlagRequired("proof")
	_ = cmd.MarkFlagRequired("semantics")

	exitCode := exitOK
	cmd.RunE = func(*cobra.Command, []string) error {
		exitCode = execute(f, log)
		return nil
	}

	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("invalid command line")
		return exitConfigError
	}
	return exitCode
}

func execute(f flags, log zerolog.Logger) int {
	semantics, ok := parse.ParseSemanticsFlag(f.semantics)
	if !ok {
		log.Error().Str("semantics", f.semantics).Msg("unrecognized semantics")
		return exitConfigError
	}
	if f.threads < 1 {
		log.Error().Int("threads", f.threads).Msg("threads must be at least 1")
		return exitConfigError
	}

	st, requiredConsistent, err := parse.Load(parse.Options{
		InstancePath:    f.instance,
		DescriptionPath: f.description,
		ProofPath:       f.proof,
		RequiredPath:    f.required,
		Semantics:       semantics,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to parse input")
		return exitParseFailure
	}
	log.Info().Int("arguments", st.ArgumentCount).Int("clauses", st.ClauseCount()).Msg("parsed instance")

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	if f.timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, time.Duration(f.timeout)*time.Second)
		defer timeoutCancel()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	token := engine.NewCancellationToken()
	rn := engine.NewRun(st, token)

	if !requiredConsistent {
		log.Info().Msg("required arguments are inconsistent; verification succeeds vacuously")
		rn.Supervisor.SetRequiredArgumentInconsistent()
		report.Write(os.Stdout, st, rn.Supervisor.Result(), f.used)
		return exitOK
	}

	done := make(chan struct{})
	go func() {
		rn.Execute(f.threads, f.complete)
		close(done)
	}()

	select {
	case <-done:
		if rn.Supervisor.State() == engine.StateUnexpectedError {
			log.Error().Msg("a worker failed unexpectedly")
			return exitUnexpected
		}
		result := rn.Supervisor.Result()
		report.Write(os.Stdout, st, result, f.used)
		if !result.Successful {
			return exitVerificationFailure
		}
		return exitOK
	case <-ctx.Done():
		token.Cancel()
		rn.Supervisor.NotifyCancelled()
		<-done
		if ctx.Err() == context.DeadlineExceeded {
			log.Error().Msg("verification timed out")
			return exitTimeout
		}
		return exitOK
	case sig := <-sigs:
		token.Cancel()
		rn.Supervisor.NotifyCancelled()
		<-done
		log.Error().Str("signal", sig.String()).Msg("interrupted")
		return exitInterrupted
	}
}
