package petapi

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/wxtcc/petcare-client/pkg/httpclient"
)

// toParams flattens a request struct into a query bag keyed by its mapstructure tags.
func toParams(v any) (httpclient.Params, error) {
	out := make(map[string]any)
	if err := mapstructure.Decode(v, &out); err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	return httpclient.Params(out), nil
}
