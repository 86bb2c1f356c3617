package push

var (
	HandlePreferenceChanged  = handlePreferenceChanged
	HandleLockedSlotsChanged = handleLockedSlotsChanged
	HandleSorted             = handleSorted
	HandleError              = handleError
)
