package handlers

import (
	"context"
	"fmt"
	"runtime"

	"github.com/TristanFaureY/cath-ticket-bot/model"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// handleStatus reports host and process diagnostics plus the invoking
// guild's record count.
func (d *Dispatcher) handleStatus(ctx *commandContext, _ []string) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	platform := "unknown"
	if hostInfo != nil {
		platform = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
	}

	memory := "unknown"
	if vm != nil {
		memory = fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024)
	}

	records := "unavailable"
	count, err := d.store.CountByGuild(context.Background(), ctx.guildID)
	if err != nil {
		d.logError("Status", "count occurrences", err)
	} else {
		records = fmt.Sprintf("%d", count)
	}

	d.sendReply(ctx.channelID, &model.Reply{
		Title: "Bot Status",
		Fields: []model.ReplyField{
			{Label: "OS", Content: platform, Inline: true},
			{Label: "Go Version", Content: runtime.Version(), Inline: true},
			{Label: "CPUs", Content: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Label: "CPU Usage", Content: fmt.Sprintf("%.1f%%", cpuUsage), Inline: true},
			{Label: "Memory", Content: memory, Inline: true},
			{Label: "Goroutines", Content: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Label: "Gateway Latency", Content: d.chat.HeartbeatLatency().String(), Inline: true},
			{Label: "Recorded Occurrences", Content: records, Inline: true},
		},
	})
}
