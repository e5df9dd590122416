package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(cellId string, webhookUrl string)
	GetWebhookUrl(cellId string) string
	Notify(cells []Cell)
	Start()
	Close()
}
