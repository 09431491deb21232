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

package gcs

import (
	"testing"
)

func TestUnitParseArchiveURL(t *testing.T) {
	var testCases = []struct {
		archiveURL, wantBucket, wantObject string
		wantErr                            bool
	}{
		{"gs://my-bucket/fn.zip", "my-bucket", "fn.zip", false},
		{"gs://my-bucket/some/path/fn.zip", "my-bucket", "some/path/fn.zip", false},
		{"https://my-bucket/fn.zip", "my-bucket", "fn.zip", false},
		{"gs://my-bucket", "", "", true},
		{"gs://my-bucket/", "", "", true},
		{"fn.zip", "", "", true},
		{"", "", "", true},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.archiveURL, func(t *testing.T) {
			t.Parallel()
			bucketName, objectName, err := ParseArchiveURL(tc.archiveURL)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Should send back an error and is NOT")
				}
				return
			}
			if err != nil {
				t.Fatalf("Want NO error, got %v", err)
			}
			if bucketName != tc.wantBucket {
				t.Errorf("bucket got %s, want %s", bucketName, tc.wantBucket)
			}
			if objectName != tc.wantObject {
				t.Errorf("object got %s, want %s", objectName, tc.wantObject)
			}
		})
	}
}
