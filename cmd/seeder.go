package cmd

import (
	"fmt"
	"log"

	"github.com/dkravets/unit-roster/internal/auth"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"sessions", "schedule_entries", "vacations", "plan_entries", "equipment", "duty_types", "personnel", "users"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		if err := seedAll(gormDB, cfg.Security.PBKDF2Iterations); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("Seeding complete")
	},
}

// seedAll fills each empty table and leaves non-empty ones alone, so the
// command is safe to re-run.
func seedAll(db *gorm.DB, iterations int) error {
	hasher := auth.NewPasswordHasher(iterations)

	if empty, err := tableEmpty(db, "users"); err != nil {
		return err
	} else if empty {
		users := []struct {
			Username string
			Password string
			Role     string
		}{
			{"admin", "admin123", "admin"},
			{"planner", "plan123", "planner"},
			{"viewer", "view123", "viewer"},
		}
		for _, u := range users {
			hash, err := hasher.Hash(u.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.Username, err)
			}
			if err := db.Exec("INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)",
				u.Username, hash, u.Role).Error; err != nil {
				return fmt.Errorf("insert user %s: %w", u.Username, err)
			}
		}
		fmt.Println("Seeded users: admin, planner, viewer")
	}

	if empty, err := tableEmpty(db, "personnel"); err != nil {
		return err
	} else if empty {
		people := [][4]string{
			{"Іван Петренко", "Пілот", "Сокол", "11 ПрикЗ"},
			{"Олег Іванов", "Штурман", "Буревій", "11 ПрикЗ"},
			{"Марія Коваленко", "Пілот", "Зірка", "БПАК 1"},
			{"Сергій Дорошенко", "Штурман", "Орел", "БПАК 1"},
		}
		for _, p := range people {
			if err := db.Exec("INSERT INTO personnel (full_name, role, callsign, unit) VALUES (?, ?, ?, ?)",
				p[0], p[1], p[2], p[3]).Error; err != nil {
				return fmt.Errorf("insert person %s: %w", p[0], err)
			}
		}
		fmt.Println("Seeded personnel")
	}

	if empty, err := tableEmpty(db, "duty_types"); err != nil {
		return err
	} else if empty {
		types := []struct {
			Code, Name, Color, Description string
			Blocks                         bool
		}{
			{"р", "Бойове чергування", "#e74c3c", "Бойове чергування", true},
			{"зп", "Запасний екіпаж", "#3498db", "Черговий екіпаж у резерві", false},
			{"в", "Відпустка", "#2ecc71", "Офіційна відпустка", true},
			{"рс", "Розвідка", "#9b59b6", "Розвідувальні польоти", true},
		}
		for _, t := range types {
			if err := db.Exec("INSERT INTO duty_types (code, name, color, description, blocks_availability) VALUES (?, ?, ?, ?, ?)",
				t.Code, t.Name, t.Color, t.Description, t.Blocks).Error; err != nil {
				return fmt.Errorf("insert duty type %s: %w", t.Code, err)
			}
		}
		fmt.Println("Seeded duty types")
	}

	if empty, err := tableEmpty(db, "equipment"); err != nil {
		return err
	} else if empty {
		items := [][2]string{
			{"БПЛА-1", "uav"},
			{"БПЛА-2", "uav"},
			{"ТЗ-1", "vehicle"},
			{"АКБ-1", "battery"},
		}
		for _, item := range items {
			if err := db.Exec("INSERT INTO equipment (name, category) VALUES (?, ?)",
				item[0], item[1]).Error; err != nil {
				return fmt.Errorf("insert equipment %s: %w", item[0], err)
			}
		}
		fmt.Println("Seeded equipment")
	}

	if empty, err := tableEmpty(db, "plan_entries"); err != nil {
		return err
	} else if empty {
		if err := db.Exec(`INSERT INTO plan_entries (plan_date, unit, mission, start_time, end_time, pilot_id, navigator_id, uav_id, vehicle_id, battery_id, notes)
VALUES ('2025-01-15', '11 ПрикЗ', 'Патрулювання', '08:00', '12:00', 1, 2, 1, 3, 4, 'Ранковий виліт'),
       ('2025-01-15', 'БПАК 1', 'Тренування', '13:00', '16:00', 3, 4, 2, NULL, NULL, 'Підготовка екіпажу')`).Error; err != nil {
			return fmt.Errorf("insert plan entries: %w", err)
		}
		fmt.Println("Seeded plan entries")
	}

	if empty, err := tableEmpty(db, "vacations"); err != nil {
		return err
	} else if empty {
		if err := db.Exec(`INSERT INTO vacations (person_id, start_date, end_date, status)
VALUES (1, '2025-02-01', '2025-02-10', 'approved'),
       (4, '2025-01-20', '2025-01-25', 'approved')`).Error; err != nil {
			return fmt.Errorf("insert vacations: %w", err)
		}
		fmt.Println("Seeded vacations")
	}

	if empty, err := tableEmpty(db, "schedule_entries"); err != nil {
		return err
	} else if empty {
		if err := db.Exec(`INSERT INTO schedule_entries (duty_date, person_id, duty_type_id, note)
VALUES ('2025-01-15', 1, 1, 'Нічне чергування'),
       ('2025-01-15', 2, 2, 'Резерв'),
       ('2025-01-16', 3, 4, 'Розвідка'),
       ('2025-01-16', 4, 1, 'Основний екіпаж')`).Error; err != nil {
			return fmt.Errorf("insert schedule entries: %w", err)
		}
		fmt.Println("Seeded schedule entries")
	}

	return nil
}

func tableEmpty(db *gorm.DB, table string) (bool, error) {
	var count int64
	if err := db.Raw("SELECT COUNT(*) FROM " + table).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}
