package auth

import (
	"context"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseOnce sync.Once
	firebaseAuth *firebaseauth.Client
	projectID    string
)

// initFirebase sets up the Firebase Auth client used to verify Google
// sign-in ID tokens. Called lazily so local-account-only deployments can run
// without Firebase credentials.
func initFirebase() {
	firebaseOnce.Do(func() {
		projectID = os.Getenv("FIREBASE_PROJECT_ID")
		credsFile := os.Getenv("FIREBASE_CREDENTIALS_FILE")

		ctx := context.Background()
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID},
			option.WithCredentialsFile(credsFile))
		if err != nil {
			log.Printf("❌ Firebase init failed: %v", err)
			return
		}

		client, err := app.Auth(ctx)
		if err != nil {
			log.Printf("❌ Firebase auth client failed: %v", err)
			return
		}
		firebaseAuth = client
	})
}
