package mocks

import "github.com/stretchr/testify/mock"

const maxLogFields = 8

// AllowLogging lets the logger mock accept any log call at any level with up to
// maxLogFields fields. Expectations set on the mock before this call still take
// precedence.
func AllowLogging(l *Logger) *Logger {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		args := []interface{}{mock.Anything}
		for n := 0; n <= maxLogFields; n++ {
			l.On(level, args...).Maybe()
			args = append(args, mock.Anything)
		}
	}
	return l
}
