package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/stemsi/arabic-learning-backend/internal/client"
	"github.com/stemsi/arabic-learning-backend/internal/config"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/logger"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
	"github.com/stemsi/arabic-learning-backend/internal/service"
)

// sampleFile is one attachment of a seeded content.
type sampleFile struct {
	name, mimeType, size, kind, data string
}

var sampleFiles = map[model.Section]sampleFile{
	model.SectionMufrodat: {
		name:     "kosakata-harian.pdf",
		mimeType: "application/pdf",
		size:     "2.4 MB",
		kind:     "PDF",
		data:     "KOSAKATA BAHASA ARAB SEHARI-HARI\n\n1. التحيات (Salam)\n   - السلام عليكم - Assalamu'alaikum\n   - وعليكم السلام - Wa'alaikum salam\n   - مرحبا - Marhaban\n   - مع السلامة - Ma'assalama",
	},
	model.SectionQiroah: {
		name:     "teks-bacaan.docx",
		mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		size:     "0.8 MB",
		kind:     "TEXT",
		data:     "نص القراءة العربية\n\nفي المدرسة\n\nأنا طالب في المدرسة. أذهب إلى المدرسة كل يوم. في المدرسة أتعلم اللغة العربية والرياضيات والعلوم.",
	},
	model.SectionHiwar: {
		name:     "video-percakapan.mp4",
		mimeType: "video/mp4",
		size:     "15.2 MB",
		kind:     "VIDEO",
		data:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	},
	model.SectionQowaid: {
		name:     "tata-bahasa.pdf",
		mimeType: "application/pdf",
		size:     "3.1 MB",
		kind:     "PDF",
		data:     "TATA BAHASA ARAB DASAR\n\n1. ISIM (Kata Benda)\n   - Isim adalah kata yang menunjukkan pada suatu benda, orang, atau konsep.\n   - Contoh: كِتَابٌ (buku), مُعَلِّمٌ (guru), بَيْتٌ (rumah)",
	},
}

// chapters are the six textbook chapters, two semesters of three.
var chapters = []string{
	"Salam dan Perkenalan",
	"Keluarga",
	"Sekolah",
	"Kehidupan Sehari-hari",
	"Hobi",
	"Makanan dan Minuman",
}

var demoStudents = []string{
	"Ahmad Fauzi", "Siti Aminah", "Budi Santoso", "Fatimah Zahra", "Yusuf Hakim",
}

func main() {
	withStudents := flag.Bool("students", false, "Also register demo students")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.New(cfg, log)
	defer db.Close()

	contentService := service.NewContentService(repository.NewContentRepository(db), db, log)
	studentService := service.NewStudentService(repository.NewStudentRepository(db), db, log)

	fmt.Println("=== Seeding Sample Contents ===")

	created := 0
	for i, title := range chapters {
		chapterID := i + 1
		for section, f := range sampleFiles {
			s := section
			existing, err := contentService.List(ctx, model.ContentFilter{ChapterID: &chapterID, Section: &s})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to list contents")
			}
			if len(existing) > 0 {
				continue
			}

			_, err = contentService.Create(ctx, model.CreateContentRequest{
				ChapterID:    chapterID,
				Section:      section,
				Title:        fmt.Sprintf("%s: %s", title, f.name),
				FileNames:    []string{f.name},
				FileTypes:    []string{f.mimeType},
				FileSizes:    []string{f.size},
				FileContents: []string{f.kind},
				FileDatas:    []string{f.data},
				FileCount:    1,
			})
			if err != nil {
				fmt.Printf("Error creating content for chapter %d/%s: %v\n", chapterID, section, err)
				continue
			}
			created++
		}
	}
	fmt.Printf("Created %d contents.\n", created)

	if !*withStudents {
		return
	}

	fmt.Println("\n=== Seeding Demo Students ===")

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	successCount := 0
	for _, name := range demoStudents {
		id := client.GenerateStudentID(name, rng)
		if _, err := studentService.Create(ctx, model.CreateStudentRequest{ID: id, Name: name}); err != nil {
			fmt.Printf("Error creating student %s (%s): %v\n", name, id, err)
			continue
		}
		fmt.Printf("  %s -> %s\n", id, name)
		successCount++
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, len(demoStudents))
}
