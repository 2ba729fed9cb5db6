package firebase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/KirkDiggler/gameday/internal/log"
	"go.uber.org/zap"
)

// Config holds the Firebase project and credentials
type Config struct {
	// ProjectID is the Firebase project, optional when the credentials carry it
	ProjectID string

	// CredentialsJSON is a base64 encoded service account key, preferred when set
	CredentialsJSON string

	// CredentialsFile is a path to a service account key file
	CredentialsFile string
}

// NewFirestore opens a Firestore client for the configured project.
// With FIRESTORE_EMULATOR_HOST set no credentials are needed.
func NewFirestore(ctx context.Context, cfg *Config) (*firestore.Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		decoded, err := base64.StdEncoding.DecodeString(cfg.CredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
		log.Info("Initializing Firebase from inline credentials")
	case os.Getenv("FIRESTORE_EMULATOR_HOST") != "":
		log.Info("Initializing Firebase against emulator", zap.String("host", os.Getenv("FIRESTORE_EMULATOR_HOST")))
	case cfg.CredentialsFile != "":
		if _, err := os.Stat(cfg.CredentialsFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("firebase credentials file not found: %s", cfg.CredentialsFile)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		log.Info("Initializing Firebase from credentials file", zap.String("path", cfg.CredentialsFile))
	}

	var appConfig *fb.Config
	if cfg.ProjectID != "" {
		appConfig = &fb.Config{ProjectID: cfg.ProjectID}
	}

	app, err := fb.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	return client, nil
}
