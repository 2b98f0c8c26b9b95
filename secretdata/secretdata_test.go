// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package secretdata_test

import (
	"bytes"
	"testing"

	"github.com/qdmce/qdmce-go/insecuresecretdataaccess"
	"github.com/qdmce/qdmce-go/secretdata"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var b secretdata.Bytes
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if !b.Equal(secretdata.NewBytesFromData(nil, insecuresecretdataaccess.Token{})) {
		t.Errorf("zero value is not equal to wrapped nil")
	}
}

func TestNewBytesFromRand(t *testing.T) {
	for _, size := range []uint32{0, 1, 28, 1024} {
		b, err := secretdata.NewBytesFromRand(size)
		if err != nil {
			t.Fatalf("NewBytesFromRand(%d) err = %v, want nil", size, err)
		}
		if got := b.Len(); got != int(size) {
			t.Errorf("Len() = %d, want %d", got, size)
		}
	}
	a, err := secretdata.NewBytesFromRand(32)
	if err != nil {
		t.Fatalf("NewBytesFromRand(32) err = %v, want nil", err)
	}
	b, err := secretdata.NewBytesFromRand(32)
	if err != nil {
		t.Fatalf("NewBytesFromRand(32) err = %v, want nil", err)
	}
	if a.Equal(b) {
		t.Errorf("two calls to NewBytesFromRand(32) returned the same bytes")
	}
}

func TestDataReturnsCopy(t *testing.T) {
	message := []byte{0x1f, 0x00, 0xa5, 0x03}
	b := secretdata.NewBytesFromData(message, insecuresecretdataaccess.Token{})
	message[0] = 0

	got := b.Data(insecuresecretdataaccess.Token{})
	if want := []byte{0x1f, 0x00, 0xa5, 0x03}; !bytes.Equal(got, want) {
		t.Fatalf("Data() = %x, want %x", got, want)
	}
	got[1] = 0xff
	if again := b.Data(insecuresecretdataaccess.Token{}); again[1] != 0x00 {
		t.Errorf("Data() exposes the wrapped slice")
	}
}

func TestEqual(t *testing.T) {
	a := secretdata.NewBytesFromData([]byte("derived key"), insecuresecretdataaccess.Token{})
	for _, tc := range []struct {
		name  string
		other secretdata.Bytes
		want  bool
	}{
		{"same", secretdata.NewBytesFromData([]byte("derived key"), insecuresecretdataaccess.Token{}), true},
		{"different", secretdata.NewBytesFromData([]byte("derived kez"), insecuresecretdataaccess.Token{}), false},
		{"prefix", secretdata.NewBytesFromData([]byte("derived"), insecuresecretdataaccess.Token{}), false},
		{"empty", secretdata.Bytes{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Equal(tc.other); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}
