package identity

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_identity.go github.com/kasuboski/sceneid/pkg/identity MetadataService,AliasIndex
