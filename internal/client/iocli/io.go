package iocli

//go:generate moq -out io_mock.go . IO

// IO абстрагирует терминал для команд клиента
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// Errorf пишет в поток ошибок
	Errorf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// Confirm задает вопрос да/нет. Пустой ответ означает "нет".
	Confirm(prompt string) (bool, error)
	// IsInteractive reports whether input comes from a terminal
	IsInteractive() bool
	Write(p []byte) (n int, err error)
}
