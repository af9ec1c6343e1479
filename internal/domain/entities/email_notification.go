package entities

// DefaultUserName is used when a notification names no recipient.
const DefaultUserName = "User"

type EmailNotification struct {
	email    string
	imageURL string
	userName string
}

func NewEmailNotification(email, imageURL, userName string) *EmailNotification {
	if userName == "" {
		userName = DefaultUserName
	}

	return &EmailNotification{
		email:    email,
		imageURL: imageURL,
		userName: userName,
	}
}

func (n *EmailNotification) Email() string {
	return n.email
}

func (n *EmailNotification) ImageURL() string {
	return n.imageURL
}

func (n *EmailNotification) UserName() string {
	return n.userName
}
