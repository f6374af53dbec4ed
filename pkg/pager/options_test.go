package pager

import "testing"

func TestNormalizeOptions(t *testing.T) {
	type opts struct {
		PageSize int    `structs:"page_size"`
		Filter   string `structs:"filter"`
	}

	tests := []struct {
		name    string
		config  any
		want    map[string]any
		wantErr bool
	}{
		{
			name:   "nil config",
			config: nil,
			want:   map[string]any{},
		},
		{
			name:   "nil typed map",
			config: RequestOptions(nil),
			want:   map[string]any{},
		},
		{
			name:   "plain map",
			config: map[string]any{"page_size": 5},
			want:   map[string]any{"page_size": 5},
		},
		{
			name:   "request options map",
			config: RequestOptions{"filter": "active"},
			want:   map[string]any{"filter": "active"},
		},
		{
			name:   "struct with tags",
			config: opts{PageSize: 7, Filter: "running"},
			want:   map[string]any{"page_size": 7, "filter": "running"},
		},
		{
			name:   "pointer to struct",
			config: &opts{PageSize: 3},
			want:   map[string]any{"page_size": 3, "filter": ""},
		},
		{
			name:   "nil struct pointer",
			config: (*opts)(nil),
			want:   map[string]any{},
		},
		{
			name:    "unsupported scalar",
			config:  42,
			wantErr: true,
		},
		{
			name:    "unsupported slice",
			config:  []string{"nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeOptions(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("normalizeOptions(%v) = %v, want error", tt.config, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeOptions(%v) error = %v", tt.config, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeOptions(%v) = %v, want %v", tt.config, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("option %q = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestNormalizeOptionsDeepCopy(t *testing.T) {
	nested := map[string]any{"region": "eu"}
	src := map[string]any{"labels": nested, "page_size": 5}

	got, err := normalizeOptions(src)
	if err != nil {
		t.Fatalf("normalizeOptions() error = %v", err)
	}

	nested["region"] = "us"
	inner, ok := got["labels"].(map[string]any)
	if !ok {
		t.Fatalf("labels = %T, want map", got["labels"])
	}
	if inner["region"] != "eu" {
		t.Errorf("nested option mutated through caller's map: region = %v, want eu", inner["region"])
	}
}

func TestOptionInt(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int
		wantOk bool
	}{
		{name: "int", value: 5, want: 5, wantOk: true},
		{name: "int32", value: int32(6), want: 6, wantOk: true},
		{name: "int64", value: int64(7), want: 7, wantOk: true},
		{name: "json float", value: float64(8), want: 8, wantOk: true},
		{name: "string", value: "9", wantOk: false},
		{name: "nil", value: nil, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := optionInt(tt.value)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("optionInt(%v) = (%d, %v), want (%d, %v)", tt.value, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
