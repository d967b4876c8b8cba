package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/fpl --output domain/fpl --outpkg fplmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/item --output domain/item --outpkg itemmock --filename repository_mock.go
