package health

type Service interface {
}

type Impl struct {
	isConnected func() bool
}
