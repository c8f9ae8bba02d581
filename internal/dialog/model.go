package dialog

type State string

const (
	StateIdle State = "idle"

	// Продукция
	StateProdList          State = "prod_list"    // список продукции
	StateProdCard          State = "prod_card"    // карточка продукта
	StateProdPickType      State = "prod_type"    // выбор типа (добавление/редактирование)
	StateProdName          State = "prod_name"    // ввод названия
	StateProdArticle       State = "prod_article" // ввод артикула
	StateProdPrice         State = "prod_price"   // ввод минимальной цены
	StateProdWidth         State = "prod_width"   // ввод ширины рулона
	StateProdDeleteConfirm State = "prod_delete"  // подтверждение удаления
	StateProdMaterials     State = "prod_mats"    // спецификация продукта
	StateProdMatPick       State = "prod_mat_pick" // выбор материала для спецификации
	StateProdMatQty        State = "prod_mat_qty"  // ввод нормы расхода

	// Расчёт потребности в материале
	StateReqPickType     State = "req_pick_type" // выбор типа продукции
	StateReqPickMaterial State = "req_pick_mat"  // выбор материала
	StateReqAmount       State = "req_amount"    // количество продукции
	StateReqWidth        State = "req_width"     // ширина рулона
	StateReqTolerance    State = "req_tolerance" // допустимый коэффициент
	StateReqStock        State = "req_stock"     // остаток на складе

	// Расчёт стоимости партии
	StateCostPickProduct State = "cost_pick_prod"
	StateCostQty         State = "cost_qty"
)

type Payload map[string]any

type Item struct {
	ChatID  int64
	State   State
	Payload Payload
}
