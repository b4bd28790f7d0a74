package result_test

import (
	"testing"

	"github.com/JLReitz/ShmitWare/result"
)

func TestBinaryPoles(t *testing.T) {
	if r := result.Succeeded(); !r.IsSuccess() || r.IsFailure() {
		t.Errorf("Succeeded() = %v, want success", r.Code())
	}
	if r := result.Failed(); !r.IsFailure() || r.IsSuccess() {
		t.Errorf("Failed() = %v, want failure", r.Code())
	}
}

func TestBinaryFromCode(t *testing.T) {
	r := result.Of(result.BinarySucceeded)
	if !r.IsSuccess() {
		t.Error("Of(BinarySucceeded) should be success")
	}
	if r.Code() != result.BinarySucceeded {
		t.Errorf("Code() = %v, want BinarySucceeded", r.Code())
	}
}

func TestBinaryEquality(t *testing.T) {
	if result.Succeeded() != result.Succeeded() {
		t.Error("two success envelopes must compare equal")
	}
	if result.Succeeded() == result.Failed() {
		t.Error("success and failure envelopes must differ")
	}
	if !result.Failed().Is(result.BinaryFailed) {
		t.Error("Is(BinaryFailed) should hold for Failed()")
	}
	if result.Failed().Is(result.BinarySucceeded) {
		t.Error("Is(BinarySucceeded) should not hold for Failed()")
	}
}

func TestBinaryUnderlying(t *testing.T) {
	if uint8(result.Succeeded().Code()) != 1 {
		t.Error("success code must convert to 1")
	}
	if uint8(result.Failed().Code()) != 0 {
		t.Error("failure code must convert to 0")
	}
}

func TestTransferPoles(t *testing.T) {
	if r := result.Complete(); !r.IsSuccess() {
		t.Errorf("Complete() = %v, want success", r.Code())
	}
	if r := result.TransferFailure(); !r.IsFailure() {
		t.Errorf("TransferFailure() = %v, want failure", r.Code())
	}
}

func TestTransferPending(t *testing.T) {
	r := result.Pending()
	if r.IsSuccess() || r.IsFailure() {
		t.Error("pending is neither pole")
	}
	if !r.Is(result.TransferPending) {
		t.Error("pending envelope should match TransferPending")
	}
}

func TestCodeStrings(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{result.BinarySucceeded.String(), "succeeded"},
		{result.BinaryFailed.String(), "failed"},
		{result.TransferComplete.String(), "complete"},
		{result.TransferPending.String(), "pending"},
		{result.TransferFailed.String(), "failed"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("String() = %q, want %q", c.got, c.want)
		}
	}
}
