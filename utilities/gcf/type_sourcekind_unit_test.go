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

package gcf

import (
	"testing"

	"google.golang.org/api/cloudfunctions/v1"
)

func TestUnitSourceOf(t *testing.T) {
	var testCases = []struct {
		name          string
		cloudFunction *cloudfunctions.CloudFunction
		want          sourceKind
		wantString    string
	}{
		{name: "archive", cloudFunction: &cloudfunctions.CloudFunction{SourceArchiveUrl: "gs://b/o.zip"}, want: sourceArchiveURL, wantString: "sourceArchiveUrl"},
		{name: "previousUpload", cloudFunction: &cloudfunctions.CloudFunction{SourceUploadUrl: "https://x"}, want: sourceUploadURL, wantString: "sourceUploadUrl"},
		{name: "none", cloudFunction: &cloudfunctions.CloudFunction{}, want: sourceUploadURL, wantString: "sourceUploadUrl"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := sourceOf(tc.cloudFunction)
			if got != tc.want {
				t.Errorf("want %v got %v", tc.want, got)
			}
			if got.String() != tc.wantString {
				t.Errorf("want %s got %s", tc.wantString, got.String())
			}
		})
	}
}
