package catalogevents

const (
	TopicName           = "catalog"
	productUpsertedName = TopicName + ".productUpserted"
	productDeletedName  = TopicName + ".productDeleted"
)

type ProductUpserted struct {
	ProductUID string
}

func (e ProductUpserted) GetEventTypeName() string {
	return productUpsertedName
}

func (e ProductUpserted) GetAggregateName() string {
	return e.ProductUID
}

type ProductDeleted struct {
	ProductUID string
}

func (e ProductDeleted) GetEventTypeName() string {
	return productDeletedName
}

func (e ProductDeleted) GetAggregateName() string {
	return e.ProductUID
}
