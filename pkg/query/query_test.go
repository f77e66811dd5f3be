package query_test

import (
	"testing"

	"github.com/shipdesk/shipdesk/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "orders", "o").
		Project("id", "id").
		Project("customer_email", "customerEmail").
		Project("created_at", "createdAt")
}

func ptr(s string) *string { return &s }

func TestProjectionMapFrom(t *testing.T) {
	p := testProjection()
	got := p.From()
	want := "public.orders o"
	if got != want {
		t.Errorf("From() = %q, want %q", got, want)
	}
}

func TestProjectionMapAlias(t *testing.T) {
	p := testProjection()
	if got := p.Alias(); got != "o" {
		t.Errorf("Alias() = %q, want %q", got, "o")
	}
}

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	got := p.Columns()
	want := "o.id, o.customer_email, o.created_at"
	if got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumnList(t *testing.T) {
	p := testProjection()
	got := p.ColumnList()
	want := []string{"o.id", "o.customer_email", "o.created_at"}
	if len(got) != len(want) {
		t.Fatalf("ColumnList() length = %d, want %d", len(got), len(want))
	}
	for i, col := range got {
		if col != want[i] {
			t.Errorf("ColumnList()[%d] = %q, want %q", i, col, want[i])
		}
	}
}

func TestProjectionMapColumnLookup(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "id", "o.id"},
		{"mapped camel", "customerEmail", "o.customer_email"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.viewName); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, got, tt.want)
			}
		})
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single ascending",
			input: "customerEmail",
			want:  []query.SortField{{Field: "customerEmail", Descending: false}},
		},
		{
			name:  "single descending",
			input: "-createdAt",
			want:  []query.SortField{{Field: "createdAt", Descending: true}},
		},
		{
			name:  "multiple mixed",
			input: "customerEmail,-createdAt",
			want: []query.SortField{
				{Field: "customerEmail", Descending: false},
				{Field: "createdAt", Descending: true},
			},
		},
		{
			name:  "with spaces",
			input: " customerEmail , -createdAt ",
			want: []query.SortField{
				{Field: "customerEmail", Descending: false},
				{Field: "createdAt", Descending: true},
			},
		},
		{
			name:  "empty parts skipped",
			input: "customerEmail,,createdAt",
			want: []query.SortField{
				{Field: "customerEmail", Descending: false},
				{Field: "createdAt", Descending: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ParseSortFields(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuilderBuild(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o"
	if sql != wantSQL {
		t.Errorf("Build() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilderBuildCount(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.orders o"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilderBuildPage(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "createdAt", Descending: true})
	sql, args := b.BuildPage(2, 10)

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o ORDER BY o.created_at DESC LIMIT 10 OFFSET 10"
	if sql != wantSQL {
		t.Errorf("BuildPage() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildPage() args = %v, want empty", args)
	}
}

func TestBuilderBuildSingle(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.BuildSingle("id", "abc-123")

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.id = $1"
	if sql != wantSQL {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "abc-123" {
		t.Errorf("BuildSingle() args = %v, want [abc-123]", args)
	}
}

func TestBuilderBuildFirst(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "createdAt", Descending: true})
	b.WhereEquals("customerEmail", "alice@example.com")
	sql, args := b.BuildFirst()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.customer_email = $1 ORDER BY o.created_at DESC LIMIT 1"
	if sql != wantSQL {
		t.Errorf("BuildFirst() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "alice@example.com" {
		t.Errorf("BuildFirst() args = %v, want [alice@example.com]", args)
	}
}

func TestBuilderWhereEquals(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("customerEmail", "alice@example.com")
	sql, args := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.customer_email = $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "alice@example.com" {
		t.Errorf("args = %v, want [alice@example.com]", args)
	}
}

func TestBuilderWhereEqualsNilSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("customerEmail", nil)
	sql, args := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereEqualsNilPointerSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	var email *string
	b.WhereEquals("customerEmail", email)
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereContains(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereContains("customerEmail", ptr("example"))
	sql, args := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.customer_email ILIKE $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "%example%" {
		t.Errorf("args = %v, want [%%example%%]", args)
	}
}

func TestBuilderWhereContainsNilSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereContains("customerEmail", nil)
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereContainsEmptySkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereContains("customerEmail", ptr(""))
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereNull(t *testing.T) {
	t.Run("null true generates IS NULL", func(t *testing.T) {
		b := query.NewBuilder(testProjection())
		b.WhereNull("customerEmail", true)
		sql, args := b.Build()

		wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.customer_email IS NULL"
		if sql != wantSQL {
			t.Errorf("sql = %q, want %q", sql, wantSQL)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("null false generates IS NOT NULL", func(t *testing.T) {
		b := query.NewBuilder(testProjection())
		b.WhereNull("customerEmail", false)
		sql, _ := b.Build()

		wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.customer_email IS NOT NULL"
		if sql != wantSQL {
			t.Errorf("sql = %q, want %q", sql, wantSQL)
		}
	})
}

func TestBuilderWhereSearch(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereSearch(ptr("oats"), "customerEmail", "id")
	sql, args := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE (o.customer_email ILIKE $1 OR o.id ILIKE $2)"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 || args[0] != "%oats%" || args[1] != "%oats%" {
		t.Errorf("args = %v, want [%%oats%% %%oats%%]", args)
	}
}

func TestBuilderWhereSearchNilSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereSearch(nil, "customerEmail")
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderMultipleConditions(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("customerEmail", "alice@example.com")
	b.WhereContains("id", ptr("abc"))
	sql, args := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.customer_email = $1 AND o.id ILIKE $2"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 {
		t.Fatalf("args length = %d, want 2", len(args))
	}
	if args[0] != "alice@example.com" {
		t.Errorf("args[0] = %v, want alice@example.com", args[0])
	}
	if args[1] != "%abc%" {
		t.Errorf("args[1] = %v, want %%abc%%", args[1])
	}
}

func TestBuilderOrderByFields(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "id", Descending: false})
	b.OrderByFields([]query.SortField{
		{Field: "createdAt", Descending: true},
		{Field: "customerEmail", Descending: false},
	})
	sql, _ := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o ORDER BY o.created_at DESC, o.customer_email ASC"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
}

func TestBuilderDefaultSort(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "createdAt", Descending: true})
	sql, _ := b.Build()

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o ORDER BY o.created_at DESC"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
}

func TestBuilderBuildCountWithConditions(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("customerEmail", "alice@example.com")
	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.orders o WHERE o.customer_email = $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "alice@example.com" {
		t.Errorf("args = %v, want [alice@example.com]", args)
	}
}

func TestBuilderBuildPageWithConditions(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "id"})
	b.WhereContains("customerEmail", ptr("acme"))
	sql, args := b.BuildPage(3, 25)

	wantSQL := "SELECT o.id, o.customer_email, o.created_at FROM public.orders o WHERE o.customer_email ILIKE $1 ORDER BY o.id ASC LIMIT 25 OFFSET 50"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "%acme%" {
		t.Errorf("args = %v, want [%%acme%%]", args)
	}
}
