package utils

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

const expoPushURL = "https://exp.host/--/api/v2/push/send"

// PushMessage represents the structure of a message sent to the Expo push API
type PushMessage struct {
	To    string                 `json:"to"`
	Sound string                 `json:"sound"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

// SendPushNotification delivers a push message to a single device token.
// Delivery is best effort; failures are logged, never surfaced.
func SendPushNotification(pushToken, title, body string) {
	if pushToken == "" {
		return
	}

	message := PushMessage{
		To:    pushToken,
		Sound: "default",
		Title: title,
		Body:  body,
	}

	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal push message: %v", err)
		return
	}

	resp, err := http.Post(expoPushURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Failed to send push notification: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Push notification service returned status %d", resp.StatusCode)
	}
}
