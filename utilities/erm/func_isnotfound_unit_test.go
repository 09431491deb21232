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
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestUnitIsNotFound(t *testing.T) {
	var testCases = []struct {
		name         string
		err          error
		wantNotFound bool
	}{
		{
			name:         "err404",
			err:          &googleapi.Error{Code: 404, Message: "Function not found"},
			wantNotFound: true,
		},
		{
			name:         "err404Wrapped",
			err:          fmt.Errorf("ProjectsLocationsFunctionsService.Get %w", &googleapi.Error{Code: 404}),
			wantNotFound: true,
		},
		{
			name:         "err403",
			err:          &googleapi.Error{Code: 403, Message: "forbidden"},
			wantNotFound: false,
		},
		{
			name:         "notAnAPIError",
			err:          fmt.Errorf("404 in the text is not enough"),
			wantNotFound: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNotFound(tc.err); got != tc.wantNotFound {
				t.Errorf("want %v got %v for %v", tc.wantNotFound, got, tc.err)
			}
		})
	}
}
