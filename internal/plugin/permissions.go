package plugin

// SbcPermission is a capability tag governing what a plugin may access on the
// SBC side. The set matches the permissions understood by the machine's
// plugin service.
type SbcPermission string

const (
	PermCommandExecution          SbcPermission = "commandExecution"
	PermCodeInterceptionRead      SbcPermission = "codeInterceptionRead"
	PermCodeInterceptionReadWrite SbcPermission = "codeInterceptionReadWrite"
	PermManagePlugins             SbcPermission = "managePlugins"
	PermManageUserSessions        SbcPermission = "manageUserSessions"
	PermObjectModelRead           SbcPermission = "objectModelRead"
	PermObjectModelReadWrite      SbcPermission = "objectModelReadWrite"
	PermRegisterHttpEndpoints     SbcPermission = "registerHttpEndpoints"
	PermReadFilaments             SbcPermission = "readFilaments"
	PermWriteFilaments            SbcPermission = "writeFilaments"
	PermReadFirmware              SbcPermission = "readFirmware"
	PermWriteFirmware             SbcPermission = "writeFirmware"
	PermReadGCodes                SbcPermission = "readGCodes"
	PermWriteGCodes               SbcPermission = "writeGCodes"
	PermReadMacros                SbcPermission = "readMacros"
	PermWriteMacros               SbcPermission = "writeMacros"
	PermReadSystem                SbcPermission = "readSystem"
	PermWriteSystem               SbcPermission = "writeSystem"
	PermReadWeb                   SbcPermission = "readWeb"
	PermWriteWeb                  SbcPermission = "writeWeb"
	PermFileSystemAccess          SbcPermission = "fileSystemAccess"
	PermLaunchProcesses           SbcPermission = "launchProcesses"
	PermNetworkAccess             SbcPermission = "networkAccess"
	PermWebcamAccess              SbcPermission = "webcamAccess"
	PermGpioAccess                SbcPermission = "gpioAccess"
	PermSuperUser                 SbcPermission = "superUser"
)

var sbcPermissions = map[SbcPermission]struct{}{
	PermCommandExecution:          {},
	PermCodeInterceptionRead:      {},
	PermCodeInterceptionReadWrite: {},
	PermManagePlugins:             {},
	PermManageUserSessions:        {},
	PermObjectModelRead:           {},
	PermObjectModelReadWrite:      {},
	PermRegisterHttpEndpoints:     {},
	PermReadFilaments:             {},
	PermWriteFilaments:            {},
	PermReadFirmware:              {},
	PermWriteFirmware:             {},
	PermReadGCodes:                {},
	PermWriteGCodes:               {},
	PermReadMacros:                {},
	PermWriteMacros:               {},
	PermReadSystem:                {},
	PermWriteSystem:               {},
	PermReadWeb:                   {},
	PermWriteWeb:                  {},
	PermFileSystemAccess:          {},
	PermLaunchProcesses:           {},
	PermNetworkAccess:             {},
	PermWebcamAccess:              {},
	PermGpioAccess:                {},
	PermSuperUser:                 {},
}

// IsSbcPermission reports whether s is a member of the known permission set.
func IsSbcPermission(s string) bool {
	_, ok := sbcPermissions[SbcPermission(s)]
	return ok
}
