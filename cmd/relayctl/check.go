package main

import (
	"fmt"
	"io"

	"pushrelay/config"
	"pushrelay/internal/domain/constants"

	"github.com/pkg/errors"
)

func runCheck(w io.Writer) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	fmt.Fprintf(w, "env:      %s\n", cfg.Env.Env)
	fmt.Fprintf(w, "storage:  %s\n", cfg.Storage.Driver)
	fmt.Fprintf(w, "queue:    %s (capacity %d, when full: %s)\n", cfg.Queue.Driver, cfg.Queue.Capacity, cfg.Queue.FullPolicy)
	fmt.Fprintf(w, "gateway:  %s\n", gatewayName(cfg))
	fmt.Fprintf(w, "workers:  %d\n", cfg.Dispatch.Workers)
	fmt.Fprintf(w, "retry:    base %s, cap %s, %d attempts\n", cfg.Retry.Base, cfg.Retry.Cap, cfg.Retry.MaxAttempts)

	problems := checkConfig(cfg)
	if len(problems) == 0 {
		fmt.Fprintln(w, "config OK")

		return nil
	}

	for _, problem := range problems {
		fmt.Fprintf(w, "  - %s\n", problem)
	}

	return errors.Errorf("%d config problem(s)", len(problems))
}

func gatewayName(cfg *config.Config) string {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		return "log"
	}

	return "fcm"
}

// checkConfig returns the settings the services would refuse or misbehave on.
func checkConfig(cfg *config.Config) []string {
	var problems []string

	switch cfg.Storage.Driver {
	case constants.StorageDriverPostgres:
		if cfg.Postgres == nil {
			problems = append(problems, "storage.driver is postgres but the postgres section is missing")
		}
	case constants.StorageDriverBolt:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage.driver %q", cfg.Storage.Driver))
	}

	switch cfg.Queue.Driver {
	case constants.QueueDriverMemory:
	case constants.QueueDriverRedis:
		if cfg.Queue.Redis.Addr == "" {
			problems = append(problems, "queue.driver is redis but queue.redis.addr is empty")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown queue.driver %q", cfg.Queue.Driver))
	}

	if cfg.Queue.FullPolicy != constants.QueueFullReject && cfg.Queue.FullPolicy != constants.QueueFullBlock {
		problems = append(problems, fmt.Sprintf("unknown queue.fullPolicy %q", cfg.Queue.FullPolicy))
	}

	if cfg.Retry.Cap < cfg.Retry.Base {
		problems = append(problems, "retry.cap is smaller than retry.base")
	}

	if cfg.Operator.TokenSecret == "" {
		problems = append(problems, "operator.tokenSecret is empty; the operator API cannot start")
	}
	if cfg.Operator.PasswordHash == "" {
		problems = append(problems, "operator.passwordHash is empty; operator login is disabled")
	}

	if cfg.Operator.GoogleClientID != "" && len(cfg.Operator.AllowedEmails) == 0 {
		problems = append(problems, "operator.googleClientId is set but operator.allowedEmails is empty")
	}

	return problems
}
