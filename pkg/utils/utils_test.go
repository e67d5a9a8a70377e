package utils

import (
	"testing"
	"testing/fstest"
)

func TestParsePropLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		key    string
		want   string
		wantOK bool
	}{
		{name: "制表符分隔", line: "model name\t: Intel(R) Core(TM) i7", key: "model name :", want: "Intel(R) Core(TM) i7", wantOK: true},
		{name: "忽略大小写", line: "CPU MHZ : 2400.000", key: "cpu MHz :", want: "2400.000", wantOK: true},
		{name: "前导空白", line: "   vendor_id : GenuineIntel\n", key: "vendor_id", want: "GenuineIntel", wantOK: true},
		{name: "空值", line: "cpu cores\t:", key: "cpu cores :", want: "", wantOK: true},
		{name: "前缀不同", line: "model\t\t: 142", key: "model name :", wantOK: false},
		{name: "key 之后不是冒号", line: "cpu cores_extra : 4", key: "cpu cores :", wantOK: false},
		{name: "空行", line: "", key: "Hardware :", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePropLine(tt.line, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("ok 期望 %v, 实际 %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Fatalf("值期望 %q, 实际 %q", tt.want, got)
			}
		})
	}
}

func TestFileHelpers(t *testing.T) {
	fsys := fstest.MapFS{
		"sys/devices/system/cpu/cpufreq/policy0/cpuinfo_max_freq": {Data: []byte("3600000\n")},
	}

	content, ok := ReadFileString(fsys, "/sys/devices/system/cpu/cpufreq/policy0/cpuinfo_max_freq")
	if !ok || content != "3600000\n" {
		t.Fatalf("读取文件失败: ok=%v content=%q", ok, content)
	}
	if _, ok := ReadFileString(fsys, "proc/cpuinfo"); ok {
		t.Fatalf("不存在的文件不应读取成功")
	}
	if _, ok := ReadFileString(nil, "proc/cpuinfo"); ok {
		t.Fatalf("nil 文件系统不应读取成功")
	}
	if !IsDirectory(fsys, "/sys/devices/system/cpu/cpufreq/policy0/") {
		t.Fatalf("policy0 应被识别为目录")
	}
	if IsDirectory(fsys, "sys/devices/system/cpu/cpufreq/policy0/cpuinfo_max_freq") {
		t.Fatalf("普通文件不应被识别为目录")
	}
	if IsDirectory(fsys, "sys/devices/system/cpu/cpufreq/policy1") {
		t.Fatalf("policy1 不应存在")
	}
}
