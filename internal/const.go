package internal

import "time"

const (
	SecTen  = 10 * time.Second
	SecFive = 5 * time.Second
)
