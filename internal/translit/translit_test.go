package translit

import "testing"

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"faction name", "Thiếu Lâm", "thieu_lam"},
		{"d with stroke", "Võ Đang", "vo_dang"},
		{"skill name", "Kim Cang Chưởng", "kim_cang_chuong"},
		{"punctuation collapses", "Nhất Dương Chỉ!!!", "nhat_duong_chi"},
		{"digits kept", "Liên Hoàn Cước 2", "lien_hoan_cuoc_2"},
		{"mixed separators", "Độc - Sa   (Chưởng)", "doc_sa_chuong"},
		{"leading and trailing trimmed", "  ~Ngũ Độc~  ", "ngu_doc"},
		{"already ascii", "buff_attack", "buff_attack"},
		{"empty", "", ""},
		{"only punctuation", "***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SnakeCase(tt.in); got != tt.want {
				t.Errorf("SnakeCase(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}
