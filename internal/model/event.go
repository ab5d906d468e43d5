package model

// EventTopic names a class of store-change notifications on the event
// bus. The stores themselves stay free of UI callback types; interested
// parties subscribe in bootstrap.
type EventTopic string

const (
	TopicCategoriesChanged  EventTopic = "categories.changed"
	TopicItemsChanged       EventTopic = "items.changed"
	TopicStoragePathChanged EventTopic = "storage_path.changed"
)

// Environment names deployment environments.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
