package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MatchGateway --dir ../usecase --output usecase --outpkg usecasemock --filename match_gateway_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DiscoveryGateway --dir ../usecase --output usecase --outpkg usecasemock --filename discovery_gateway_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name EventPublisher --dir ../usecase --output usecase --outpkg usecasemock --filename event_publisher_mock.go
