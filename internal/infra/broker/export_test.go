//go:build unit

package broker

func NewPublisherWith(queue string, open func() (Channel, func() error, error)) *Publisher {
	return newPublisher(queue, open)
}
