package vk

import "testing"

func TestVersion(t *testing.T) {
	v := MakeAPIVersion(0, 1, 3, 281)
	if v.Major() != 1 || v.Minor() != 3 || v.Patch() != 281 || v.Variant() != 0 {
		t.Errorf("MakeAPIVersion(0, 1, 3, 281) = %d.%d.%d variant %d", v.Major(), v.Minor(), v.Patch(), v.Variant())
	}
	if v.String() != "1.3.281" {
		t.Errorf("String() = %q, want 1.3.281", v.String())
	}
	if got := uint32(MakeAPIVersion(0, 1, 0, 0)); got != 1<<22 {
		t.Errorf("VK_API_VERSION_1_0 = %#x, want %#x", got, 1<<22)
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		r       Result
		name    string
		success bool
	}{
		{Success, "VK_SUCCESS", true},
		{Incomplete, "VK_INCOMPLETE", true},
		{SuboptimalKHR, "VK_SUBOPTIMAL_KHR", true},
		{ErrorExtensionNotPresent, "VK_ERROR_EXTENSION_NOT_PRESENT", false},
		{ErrorOutOfDateKHR, "VK_ERROR_OUT_OF_DATE_KHR", false},
		{Result(-424242), "VK_RESULT_UNKNOWN", false},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.name {
			t.Errorf("Result(%d).String() = %q, want %q", tt.r, got, tt.name)
		}
		if got := tt.r.IsSuccess(); got != tt.success {
			t.Errorf("Result(%d).IsSuccess() = %v, want %v", tt.r, got, tt.success)
		}
	}
	if got := ErrorDeviceLost.Describe(); got == ErrorDeviceLost.String() {
		t.Errorf("Describe() = %q adds nothing to String()", got)
	}
}

func TestBool32(t *testing.T) {
	if !True.Bool() || False.Bool() || !Bool32(7).Bool() {
		t.Errorf("Bool32.Bool() conversions are wrong")
	}
}
