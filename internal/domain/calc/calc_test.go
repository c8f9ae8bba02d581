package calc

import (
	"context"
	"errors"
	"math"
	"testing"
)

// fakeStore — справочные данные в памяти вместо Postgres.
type fakeStore struct {
	coeffs   map[int64]float64
	defects  map[int64]float64
	products map[int64]ProductPricing
	bom      map[int64][]BOMItem

	failWith error // если задано — любой метод возвращает эту ошибку
	calls    int
}

func (f *fakeStore) ProductTypeCoefficient(_ context.Context, id int64) (float64, bool, error) {
	f.calls++
	if f.failWith != nil {
		return 0, false, f.failWith
	}
	c, ok := f.coeffs[id]
	return c, ok, nil
}

func (f *fakeStore) MaterialDefectRate(_ context.Context, id int64) (float64, bool, error) {
	f.calls++
	if f.failWith != nil {
		return 0, false, f.failWith
	}
	d, ok := f.defects[id]
	return d, ok, nil
}

func (f *fakeStore) ProductPricing(_ context.Context, id int64) (*ProductPricing, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeStore) ProductMaterials(_ context.Context, id int64) ([]BOMItem, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.bom[id], nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		coeffs:  map[int64]float64{1: 2.0},
		defects: map[int64]float64{10: 0.1},
		products: map[int64]ProductPricing{
			100: {MinPartnerPrice: 100.0, RollWidth: 1.5},
			101: {MinPartnerPrice: 100.0, RollWidth: 1.5},
		},
		bom: map[int64][]BOMItem{
			// 100: материалы на 60.0 за единицу продукции
			100: {{UnitPrice: 20.0, RequiredQty: 2.0}, {UnitPrice: 10.0, RequiredQty: 2.0}},
		},
	}
}

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestMaterialRequirement_StockOffsets(t *testing.T) {
	// coefficient=2.0, defectRate=0.1, amount=10, ширина=3.0, допуск=1.0:
	// base=6.0, total=6.0*10*1.1=66.0
	cases := []struct {
		name  string
		stock float64
		want  int64
	}{
		{"без остатка", 0, 66},
		{"частичный остаток", 50, 16},
		{"остаток покрывает всё", 100, 0},
	}
	svc := NewService(newFakeStore())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.MaterialRequirement(context.Background(), RequirementInput{
				ProductTypeID: 1, MaterialID: 10,
				Amount: 10, RollWidth: 3.0, Tolerance: 1.0, StockQty: tc.stock,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("requirement = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMaterialRequirement_TruncatesDown(t *testing.T) {
	st := newFakeStore()
	st.coeffs[1] = 1.0
	st.defects[10] = 0.0
	svc := NewService(st)

	// 1.4 * 1.0 * 1.0 * 5 = 7.0; с остатком 0.5 → 6.5 → усечение до 6
	got, err := svc.MaterialRequirement(context.Background(), RequirementInput{
		ProductTypeID: 1, MaterialID: 10,
		Amount: 5, RollWidth: 1.4, Tolerance: 1.0, StockQty: 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6 {
		t.Fatalf("requirement = %d, want 6", got)
	}
}

func TestMaterialRequirement_ValidationSkipsStore(t *testing.T) {
	cases := []struct {
		name string
		in   RequirementInput
	}{
		{"amount <= 0", RequirementInput{ProductTypeID: 1, MaterialID: 10, Amount: 0, RollWidth: 1, Tolerance: 1}},
		{"rollWidth <= 0", RequirementInput{ProductTypeID: 1, MaterialID: 10, Amount: 1, RollWidth: -2, Tolerance: 1}},
		{"tolerance <= 0", RequirementInput{ProductTypeID: 1, MaterialID: 10, Amount: 1, RollWidth: 1, Tolerance: 0}},
		{"stock < 0", RequirementInput{ProductTypeID: 1, MaterialID: 10, Amount: 1, RollWidth: 1, Tolerance: 1, StockQty: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := newFakeStore()
			svc := NewService(st)
			_, err := svc.MaterialRequirement(context.Background(), tc.in)
			if !errors.Is(err, ErrBadParams) {
				t.Fatalf("err = %v, want ErrBadParams", err)
			}
			if st.calls != 0 {
				t.Fatalf("store was accessed %d times on invalid input", st.calls)
			}
		})
	}
}

func TestMaterialRequirement_NotFound(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.MaterialRequirement(context.Background(), RequirementInput{
		ProductTypeID: 999, MaterialID: 10, Amount: 1, RollWidth: 1, Tolerance: 1,
	})
	if !errors.Is(err, ErrProductTypeNotFound) {
		t.Fatalf("err = %v, want ErrProductTypeNotFound", err)
	}

	_, err = svc.MaterialRequirement(context.Background(), RequirementInput{
		ProductTypeID: 1, MaterialID: 999, Amount: 1, RollWidth: 1, Tolerance: 1,
	})
	if !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("err = %v, want ErrMaterialNotFound", err)
	}
}

func TestMaterialRequirement_Monotonic(t *testing.T) {
	svc := NewService(newFakeStore())
	base := RequirementInput{ProductTypeID: 1, MaterialID: 10, Amount: 10, RollWidth: 3.0, Tolerance: 1.0}

	prev := int64(-1)
	for amount := 1; amount <= 20; amount++ {
		in := base
		in.Amount = amount
		got, err := svc.MaterialRequirement(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got < prev {
			t.Fatalf("requirement decreased: amount=%d got=%d prev=%d", amount, got, prev)
		}
		prev = got
	}

	prev = math.MaxInt64
	for stock := 0.0; stock <= 80; stock += 10 {
		in := base
		in.StockQty = stock
		got, err := svc.MaterialRequirement(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got > prev {
			t.Fatalf("requirement increased with stock: stock=%v got=%d prev=%d", stock, got, prev)
		}
		if got < 0 {
			t.Fatalf("requirement went negative: %d", got)
		}
		prev = got
	}

	prev = -1
	for width := 0.5; width <= 5.0; width += 0.5 {
		in := base
		in.RollWidth = width
		got, err := svc.MaterialRequirement(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got < prev {
			t.Fatalf("requirement decreased: rollWidth=%v got=%d prev=%d", width, got, prev)
		}
		prev = got
	}

	prev = -1
	for tol := 0.25; tol <= 3.0; tol += 0.25 {
		in := base
		in.Tolerance = tol
		got, err := svc.MaterialRequirement(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got < prev {
			t.Fatalf("requirement decreased: tolerance=%v got=%d prev=%d", tol, got, prev)
		}
		prev = got
	}
}

func TestProductCost_PriceFloor(t *testing.T) {
	st := newFakeStore()
	// материалы: 60.0 за единицу → 300.0 за партию из 5; пол цены 100*5=500
	st.bom[100] = []BOMItem{{UnitPrice: 20.0, RequiredQty: 2.0}, {UnitPrice: 10.0, RequiredQty: 2.0}}
	svc := NewService(st)

	got, err := svc.ProductCost(context.Background(), 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", got, 500.0)
}

func TestProductCost_MaterialsDominant(t *testing.T) {
	st := newFakeStore()
	// материалы: 160.0 за единицу → 800.0 за партию из 5 > пола 500.0
	st.bom[100] = []BOMItem{{UnitPrice: 80.0, RequiredQty: 2.0}}
	svc := NewService(st)

	got, err := svc.ProductCost(context.Background(), 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", got, 800.0)
}

func TestProductCost_EmptyBOM(t *testing.T) {
	svc := NewService(newFakeStore())

	// у продукта 101 нет спецификации → ровно min_partner_price * qty
	got, err := svc.ProductCost(context.Background(), 101, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", got, 700.0)
}

func TestProductCost_RoundsToKopecks(t *testing.T) {
	st := newFakeStore()
	st.products[102] = ProductPricing{MinPartnerPrice: 0.0, RollWidth: 1.0}
	st.bom[102] = []BOMItem{{UnitPrice: 0.1, RequiredQty: 3.0}} // 0.1*3*1 = 0.30000000000000004 в float64
	svc := NewService(st)

	got, err := svc.ProductCost(context.Background(), 102, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", got, 0.3)
}

func TestProductCost_Validation(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)

	for _, qty := range []int{0, -3} {
		_, err := svc.ProductCost(context.Background(), 100, qty)
		if !errors.Is(err, ErrBadQuantity) {
			t.Fatalf("qty=%d: err = %v, want ErrBadQuantity", qty, err)
		}
	}
	if st.calls != 0 {
		t.Fatalf("store was accessed %d times on invalid quantity", st.calls)
	}
}

func TestProductCost_NotFound(t *testing.T) {
	svc := NewService(newFakeStore())
	_, err := svc.ProductCost(context.Background(), 999, 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestStoreErrorPropagation(t *testing.T) {
	st := newFakeStore()
	st.failWith = errors.New("connection refused")
	svc := NewService(st)

	_, err := svc.MaterialRequirement(context.Background(), RequirementInput{
		ProductTypeID: 1, MaterialID: 10, Amount: 1, RollWidth: 1, Tolerance: 1,
	})
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StoreError", err)
	}
	if !errors.Is(err, st.failWith) {
		t.Fatalf("store error lost the underlying cause: %v", err)
	}

	_, err = svc.ProductCost(context.Background(), 100, 1)
	if !errors.As(err, &se) {
		t.Fatalf("cost err = %v, want *StoreError", err)
	}
}

func TestIdempotence(t *testing.T) {
	svc := NewService(newFakeStore())
	in := RequirementInput{ProductTypeID: 1, MaterialID: 10, Amount: 10, RollWidth: 3.0, Tolerance: 1.0, StockQty: 50}

	first, err := svc.MaterialRequirement(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := svc.MaterialRequirement(context.Background(), in)
		if err != nil || got != first {
			t.Fatalf("call %d: (%d, %v), want (%d, nil)", i, got, err, first)
		}
	}
}
