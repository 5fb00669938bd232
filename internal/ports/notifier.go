package ports

// Notifier shows short transient messages to the user
type Notifier interface {
	Notify(message string)
	NotifyError(message string)
}
