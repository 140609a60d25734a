package queue

import "errors"

var ErrQueueFull = errors.New("hit queue is full")
