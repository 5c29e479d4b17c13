package slug_test

import (
	"context"
	"errors"
	"testing"

	"studio-api/internal/slug"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Landing Page", "landing-page"},
		{"  Hello,  World!  ", "hello-world"},
		{"Інтернет-магазин", "internet-mahazyn"},
		{"Дизайн сайту 2024", "dyzain-saitu-2024"},
		{"!!!", "item"},
		{"", "item"},
		{"CRM + ERP / інтеграція", "crm-erp-intehratsiia"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, slug.Make(tc.title), "title %q", tc.title)
	}
}

func TestMake_CapsLength(t *testing.T) {
	long := "very long project title that keeps going and going and going far past the limit"
	s := slug.Make(long)
	require.LessOrEqual(t, len(s), 50)
	require.NotEqual(t, "-", s[len(s)-1:])
}

func TestUnique_FirstFree(t *testing.T) {
	got, err := slug.Unique(context.Background(), "landing-page", func(ctx context.Context, s string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, "landing-page", got)
}

func TestUnique_SuffixesUntilFree(t *testing.T) {
	taken := map[string]bool{"landing-page": true, "landing-page-1": true}
	got, err := slug.Unique(context.Background(), "landing-page", func(ctx context.Context, s string) (bool, error) {
		return taken[s], nil
	})
	require.NoError(t, err)
	require.Equal(t, "landing-page-2", got)
}

func TestUnique_PropagatesError(t *testing.T) {
	wantErr := errors.New("db down")
	_, err := slug.Unique(context.Background(), "x", func(ctx context.Context, s string) (bool, error) {
		return false, wantErr
	})
	require.ErrorIs(t, err, wantErr)
}
