package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	SendMessageToChannel(text string) (int, error)
	SendPhotoToChannel(photoURL, caption string) (int, error)
}
