package utils

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM menginisialisasi koneksi ke Firebase.
// Kalau file credential ga ada, aplikasi tetap jalan tanpa push notif
// (fcmClient dibiarkan nil, SendNotification jadi no-op).
func InitFCM() {
	credPath := os.Getenv("FIREBASE_CREDENTIALS")
	if credPath == "" {
		credPath = "curelink-firebase.json"
	}

	if _, err := os.Stat(credPath); err != nil {
		log.Println("Warning: Firebase credential not found, push notification disabled")
		return
	}

	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("Error initializing firebase app: %v", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("Error getting messaging client: %v", err)
		return
	}

	fcmClient = client
	log.Println("Firebase Cloud Messaging Ready!")
}

// SendNotification mengirim pesan ke satu device (FCM Token).
// Handler yang bertanggung jawab ambil token dari DB, utils murni urusan Firebase.
func SendNotification(token string, title string, body string, data map[string]string) error {
	if fcmClient == nil || token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data, // Data tambahan (misal: appointment_id: "123")
	}

	_, err := fcmClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("Error sending message: %s", err)
		return err
	}

	return nil
}
