package vk

// Result is VkResult. Non-negative values are success codes.
type Result int32

const (
	Success                                     Result = 0
	NotReady                                    Result = 1
	Timeout                                     Result = 2
	EventSet                                    Result = 3
	EventReset                                  Result = 4
	Incomplete                                  Result = 5
	ErrorOutOfHostMemory                        Result = -1
	ErrorOutOfDeviceMemory                      Result = -2
	ErrorInitializationFailed                   Result = -3
	ErrorDeviceLost                             Result = -4
	ErrorMemoryMapFailed                        Result = -5
	ErrorLayerNotPresent                        Result = -6
	ErrorExtensionNotPresent                    Result = -7
	ErrorFeatureNotPresent                      Result = -8
	ErrorIncompatibleDriver                     Result = -9
	ErrorTooManyObjects                         Result = -10
	ErrorFormatNotSupported                     Result = -11
	ErrorFragmentedPool                         Result = -12
	ErrorUnknown                                Result = -13
	ErrorOutOfPoolMemory                        Result = -1000069000
	ErrorInvalidExternalHandle                  Result = -1000072003
	ErrorFragmentation                          Result = -1000161000
	ErrorInvalidOpaqueCaptureAddress            Result = -1000257000
	PipelineCompileRequired                     Result = 1000297000
	ErrorSurfaceLostKHR                         Result = -1000000000
	ErrorNativeWindowInUseKHR                   Result = -1000000001
	SuboptimalKHR                               Result = 1000001003
	ErrorOutOfDateKHR                           Result = -1000001004
	ErrorIncompatibleDisplayKHR                 Result = -1000003001
	ErrorValidationFailedEXT                    Result = -1000011001
	ErrorInvalidShaderNV                        Result = -1000012000
	ErrorInvalidDrmFormatModifierPlaneLayoutEXT Result = -1000158000
	ErrorNotPermittedKHR                        Result = -1000174001
	ErrorFullScreenExclusiveModeLostEXT         Result = -1000255000
	ThreadIdleKHR                               Result = 1000268000
	ThreadDoneKHR                               Result = 1000268001
	OperationDeferredKHR                        Result = 1000268002
	OperationNotDeferredKHR                     Result = 1000268003
	ErrorCompressionExhaustedEXT                Result = -1000338000
	IncompatibleShaderBinaryEXT                 Result = 1000482000
)

// IsSuccess reports whether r is one of the success codes.
func (r Result) IsSuccess() bool {
	return r >= 0
}

func (r Result) String() string {
	return resultString(r, false)
}

// Describe returns the registry name of r followed by its meaning.
func (r Result) Describe() string {
	return resultString(r, true)
}

// resultNames maps each code to its registry name and the meaning given in
// the VkResult reference page.
var resultNames = map[Result][2]string{
	Success:                                     {"VK_SUCCESS", "Command successfully completed"},
	NotReady:                                    {"VK_NOT_READY", "A fence or query has not yet completed"},
	Timeout:                                     {"VK_TIMEOUT", "A wait operation has not completed in the specified time"},
	EventSet:                                    {"VK_EVENT_SET", "An event is signaled"},
	EventReset:                                  {"VK_EVENT_RESET", "An event is unsignaled"},
	Incomplete:                                  {"VK_INCOMPLETE", "A return array was too small for the result"},
	SuboptimalKHR:                               {"VK_SUBOPTIMAL_KHR", "A swapchain no longer matches the surface properties exactly, but can still be used to present to the surface successfully."},
	ThreadIdleKHR:                               {"VK_THREAD_IDLE_KHR", "A deferred operation is not complete but there is currently no work for this thread to do at the time of this call."},
	ThreadDoneKHR:                               {"VK_THREAD_DONE_KHR", "A deferred operation is not complete but there is no work remaining to assign to additional threads."},
	OperationDeferredKHR:                        {"VK_OPERATION_DEFERRED_KHR", "A deferred operation was requested and at least some of the work was deferred."},
	OperationNotDeferredKHR:                     {"VK_OPERATION_NOT_DEFERRED_KHR", "A deferred operation was requested and no operations were deferred."},
	PipelineCompileRequired:                     {"VK_PIPELINE_COMPILE_REQUIRED", "A requested pipeline creation would have required compilation, but the application requested compilation to not be performed."},
	IncompatibleShaderBinaryEXT:                 {"VK_INCOMPATIBLE_SHADER_BINARY_EXT", "The provided binary shader code is not compatible with this device."},
	ErrorOutOfHostMemory:                        {"VK_ERROR_OUT_OF_HOST_MEMORY", "A host memory allocation has failed."},
	ErrorOutOfDeviceMemory:                      {"VK_ERROR_OUT_OF_DEVICE_MEMORY", "A device memory allocation has failed."},
	ErrorInitializationFailed:                   {"VK_ERROR_INITIALIZATION_FAILED", "Initialization of an object could not be completed for implementation-specific reasons."},
	ErrorDeviceLost:                             {"VK_ERROR_DEVICE_LOST", "The logical or physical device has been lost."},
	ErrorMemoryMapFailed:                        {"VK_ERROR_MEMORY_MAP_FAILED", "Mapping of a memory object has failed."},
	ErrorLayerNotPresent:                        {"VK_ERROR_LAYER_NOT_PRESENT", "A requested layer is not present or could not be loaded."},
	ErrorExtensionNotPresent:                    {"VK_ERROR_EXTENSION_NOT_PRESENT", "A requested extension is not supported."},
	ErrorFeatureNotPresent:                      {"VK_ERROR_FEATURE_NOT_PRESENT", "A requested feature is not supported."},
	ErrorIncompatibleDriver:                     {"VK_ERROR_INCOMPATIBLE_DRIVER", "The requested version of Vulkan is not supported by the driver or is otherwise incompatible for implementation-specific reasons."},
	ErrorTooManyObjects:                         {"VK_ERROR_TOO_MANY_OBJECTS", "Too many objects of the type have already been created."},
	ErrorFormatNotSupported:                     {"VK_ERROR_FORMAT_NOT_SUPPORTED", "A requested format is not supported on this device."},
	ErrorFragmentedPool:                         {"VK_ERROR_FRAGMENTED_POOL", "A pool allocation has failed due to fragmentation of the pool's memory."},
	ErrorUnknown:                                {"VK_ERROR_UNKNOWN", "An unknown error has occurred; either the application has provided invalid input, or an implementation failure has occurred."},
	ErrorOutOfPoolMemory:                        {"VK_ERROR_OUT_OF_POOL_MEMORY", "A pool memory allocation has failed."},
	ErrorInvalidExternalHandle:                  {"VK_ERROR_INVALID_EXTERNAL_HANDLE", "An external handle is not a valid handle of the specified type."},
	ErrorFragmentation:                          {"VK_ERROR_FRAGMENTATION", "A descriptor pool creation has failed due to fragmentation."},
	ErrorInvalidOpaqueCaptureAddress:            {"VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS", "A buffer creation or memory allocation failed because the requested address is not available."},
	ErrorSurfaceLostKHR:                         {"VK_ERROR_SURFACE_LOST_KHR", "A surface is no longer available."},
	ErrorNativeWindowInUseKHR:                   {"VK_ERROR_NATIVE_WINDOW_IN_USE_KHR", "The requested window is already in use by Vulkan or another API in a manner which prevents it from being used again."},
	ErrorOutOfDateKHR:                           {"VK_ERROR_OUT_OF_DATE_KHR", "A surface has changed in such a way that it is no longer compatible with the swapchain."},
	ErrorIncompatibleDisplayKHR:                 {"VK_ERROR_INCOMPATIBLE_DISPLAY_KHR", "The display used by a swapchain does not use the same presentable image layout, or is incompatible in a way that prevents sharing an image."},
	ErrorValidationFailedEXT:                    {"VK_ERROR_VALIDATION_FAILED_EXT", "A command failed because invalid usage was detected by the implementation or a validation layer."},
	ErrorInvalidShaderNV:                        {"VK_ERROR_INVALID_SHADER_NV", "One or more shaders failed to compile or link."},
	ErrorInvalidDrmFormatModifierPlaneLayoutEXT: {"VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT_EXT", "The plane layout of a DRM format modifier is invalid."},
	ErrorNotPermittedKHR:                        {"VK_ERROR_NOT_PERMITTED_KHR", "The driver implementation has denied a request to acquire a priority above the default priority."},
	ErrorFullScreenExclusiveModeLostEXT:         {"VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT", "An operation on a swapchain created with application controlled full-screen access failed as it did not have exclusive full-screen access."},
	ErrorCompressionExhaustedEXT:                {"VK_ERROR_COMPRESSION_EXHAUSTED_EXT", "An image creation failed because internal resources required for compression are exhausted."},
}

func resultString(result Result, extended bool) string {
	names, ok := resultNames[result]
	if !ok {
		names = [2]string{"VK_RESULT_UNKNOWN", "The value is not a registered VkResult."}
	}
	if extended {
		return names[0] + " " + names[1]
	}
	return names[0]
}
