// Package fcm wires the Firebase SDK into the domain's push interfaces.
package fcm

import (
	"context"
	"encoding/base64"
	"fmt"

	"evalert/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app from the configured credential source.
// Credentials may come from a file path, inline JSON or base64-encoded JSON;
// with none configured the SDK falls back to application default credentials.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	var appCfg *firebase.Config
	var opts []option.ClientOption

	if cfg != nil {
		if cfg.ProjectID != "" {
			appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
		}

		opt, err := credentialOption(cfg)
		if err != nil {
			return nil, err
		}
		if opt != nil {
			opts = append(opts, opt)
		}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	return app, nil
}

func credentialOption(cfg *config.FirebaseConfig) (option.ClientOption, error) {
	switch {
	case cfg.CredentialsPath != "":
		return option.WithCredentialsFile(cfg.CredentialsPath), nil
	case cfg.CredentialsJSON != "":
		return option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)), nil
	case cfg.CredentialsBase64 != "":
		raw, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 credentials: %w", err)
		}

		return option.WithCredentialsJSON(raw), nil
	default:
		return nil, nil
	}
}
