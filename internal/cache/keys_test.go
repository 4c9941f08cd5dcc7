package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "quiz record",
			serviceName: "quiz",
			objectType:  "record",
			identifier:  "7",
			expectedKey: "podcastquiz:quiz:record:7",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "counter",
			identifier:  "seq",
			paramsKey:   []string{},
			expectedKey: "podcastquiz:quiz:counter:seq",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "podcast",
			objectType:  "summary",
			identifier:  "12",
			paramsKey:   []string{"v1", "en"},
			expectedKey: "podcastquiz:podcast:summary:12:v1_en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
