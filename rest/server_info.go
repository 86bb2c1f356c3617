package rest

type ServerInformation struct {
	baseUrl string
	prefix  string
}

func (s ServerInformation) GetBaseURL() string {
	return s.baseUrl
}

func (s ServerInformation) GetPrefix() string {
	return s.prefix
}

func NewServerInformation(baseUrl string, prefix string) ServerInformation {
	return ServerInformation{baseUrl: baseUrl, prefix: prefix}
}
