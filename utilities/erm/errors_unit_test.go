// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/require"
)

func TestUnitConfigurationError(t *testing.T) {
	var testCases = []struct {
		name    string
		err     *ConfigurationError
		wantMsg string
	}{
		{
			name:    "missingProject",
			err:     NewMissingConfigurationError("gcp_project"),
			wantMsg: "Missing `gcp_project` config",
		},
		{
			name:    "missingCredentials",
			err:     NewMissingConfigurationError("credentials"),
			wantMsg: "Missing `credentials` config",
		},
		{
			name:    "invalidDebugMode",
			err:     NewInvalidConfigurationError("debug_mode", "maybe"),
			wantMsg: "Invalid `debug_mode` config: \"maybe\"",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.EqualError(t, tc.err, tc.wantMsg)
			require.True(t, errdefs.IsInvalidArgument(tc.err))
		})
	}
}

func TestUnitDeployFailedError(t *testing.T) {
	cause := fmt.Errorf("gcf get cloud function: %w", ErrFunctionNotFound)
	err := error(NewDeployFailedError(cause))

	require.EqualError(t, err, "deploy failed")
	require.True(t, errors.Is(err, ErrDeployFailed))
	require.True(t, errors.Is(err, ErrFunctionNotFound))
	require.True(t, errdefs.IsNotFound(err))

	var deployFailedError *DeployFailedError
	require.True(t, errors.As(err, &deployFailedError))
	require.Equal(t, cause, deployFailedError.Cause())
}

func TestUnitSentinelClasses(t *testing.T) {
	require.True(t, errdefs.IsFailedPrecondition(ErrCloudFunctionDirectoryNonExistent))
	require.True(t, errdefs.IsNotFound(ErrFunctionNotFound))
	require.True(t, errdefs.IsInvalidArgument(ErrInvalidCredentials))
	require.True(t, errdefs.IsDataLoss(ErrSourceUnreadable))
	require.True(t, errdefs.IsUnavailable(ErrUploadTransport))
	require.False(t, errors.Is(ErrFunctionNotFound, ErrDeployFailed))
}
